package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const promoJobTimeout = 1 * time.Minute

// PromoPublisher publishes the promotional channel post.
type PromoPublisher interface {
	PublishPromo(ctx context.Context) error
}

// PromoScheduler republishes the promotional post on a cron schedule.
type PromoScheduler struct {
	cronEngine    *cron.Cron
	publisher     PromoPublisher
	logger        *logrus.Entry
	cronSpecPromo string
}

func NewPromoScheduler(publisher PromoPublisher, logger *logrus.Entry, cronSpecPromo string) *PromoScheduler {
	return &PromoScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		publisher:     publisher,
		logger:        logger.WithField("component", "scheduler"),
		cronSpecPromo: cronSpecPromo,
	}
}

// Start registers the promo job and starts the cron engine. An invalid spec is
// a configuration error and is returned instead of crashing the process.
func (s *PromoScheduler) Start() error {
	s.logger.Info("Starting promo scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecPromo, s.runPromoJob)
	if err != nil {
		return fmt.Errorf("could not add promo post cron job %q: %w", s.cronSpecPromo, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecPromo).Info("Promo scheduler started")
	return nil
}

func (s *PromoScheduler) runPromoJob() {
	s.logger.Info("Cron job triggered for promo post.")

	ctx, cancel := context.WithTimeout(context.Background(), promoJobTimeout)
	defer cancel()

	if err := s.publisher.PublishPromo(ctx); err != nil {
		s.logger.WithError(err).Error("Scheduled promo post failed")
		return
	}
	s.logger.Info("Scheduled promo post published")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *PromoScheduler) Stop() {
	s.logger.Info("Stopping promo scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Promo scheduler gracefully stopped.")
}
