package app

import (
	"io"
	"testing"

	"wholesale_catalog_bot/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	testAdminID    = 1001
	testStrangerID = 2002
	testChannelID  = "-1001234567890"
	testBotLink    = "https://t.me/test_catalog_bot"
)

type sentMessage struct {
	destination string
	text        string
	options     *telebot.SendOptions
}

type recordingClient struct {
	sent []sentMessage
	err  error
}

func (c *recordingClient) SendMessage(destination string, text string, options *telebot.SendOptions) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, sentMessage{destination: destination, text: text, options: options})
	return nil
}

type recordingResponder struct {
	replies []sentMessage
	edits   []sentMessage
}

func (r *recordingResponder) Reply(text string, options *telebot.SendOptions) error {
	r.replies = append(r.replies, sentMessage{text: text, options: options})
	return nil
}

func (r *recordingResponder) Edit(text string, options *telebot.SendOptions) error {
	r.edits = append(r.edits, sentMessage{text: text, options: options})
	return nil
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Prices: []catalog.PriceItem{
			{Name: "🍓 Клубника", Price: decimal.NewFromInt(180), MinOrder: decimal.NewFromInt(50)},
			{Name: "🫐 Черника", Price: decimal.RequireFromString("320.5"), MinOrder: decimal.NewFromInt(20)},
		},
		Stock: []catalog.StockItem{
			{Name: "🍓 Клубника", Quantity: decimal.NewFromInt(1200), Unit: "кг"},
			{Name: "🍒 Вишня", Quantity: decimal.Zero, Unit: "кг"},
		},
		Upcoming: []catalog.Shipment{
			{Name: "🍒 Вишня", Date: "15 марта", Quantity: decimal.NewFromInt(1000)},
			{Name: "🥭 Манго", Date: "конец марта", Quantity: decimal.NewFromInt(500)},
		},
		Contacts: "Менеджер: Анна\nТелефон: +7 900 000-00-00\nTelegram: @fruit_manager",
	}
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestDispatcher(t *testing.T, client *recordingClient) *Dispatcher {
	t.Helper()
	renderer := NewRenderer(testCatalog(), testBotLink)
	admin := NewAdminService(client, testAdminID, testChannelID, testBotLink)
	return NewDispatcher(renderer, admin, testLogger())
}
