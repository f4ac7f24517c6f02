package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Update kinds.
const (
	KindCommand  = "command"
	KindCallback = "callback"
	KindText     = "text"
)

// Channel post statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	UpdatesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_bot_updates_handled_total",
		Help: "The total number of Telegram updates handled",
	}, []string{"kind", "name"})

	HandlerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_bot_handler_errors_total",
		Help: "The total number of updates whose handler returned an error",
	})

	ChannelPosts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_bot_channel_posts_total",
		Help: "The total number of messages sent to the broadcast channel",
	}, []string{"status"})
)
