package app

import (
	"fmt"
	"strings"

	"wholesale_catalog_bot/internal/domain/catalog"

	"gopkg.in/telebot.v3"
)

// Button identifiers carried in callback data.
const (
	ButtonMenu     = "menu"
	ButtonPrice    = "price"
	ButtonStock    = "stock"
	ButtonUpcoming = "upcoming"
	ButtonContacts = "contacts"
)

const (
	priceHeader      = "📋 *ПРАЙС-ЛИСТ*\n_(актуален на сегодня)_\n"
	priceDisclaimer  = "\n_Цены указаны без НДС. При объёме от 500 кг — скидка, уточняйте у менеджера._"
	stockHeader      = "📦 *ОСТАТКИ НА СКЛАДЕ*\n"
	stockUnavailable = "❌ нет в наличии"
	stockDisclaimer  = "\n_Данные обновляются вручную. Для точной информации — свяжитесь с менеджером._"
	upcomingHeader   = "🚚 *БЛИЖАЙШИЕ ПРИХОДЫ*\n"
	upcomingEmpty    = "🚚 *БЛИЖАЙШИЕ ПРИХОДЫ*\n\nПока нет запланированных поставок."
	upcomingNote     = "\n_Даты ориентировочные. Уточняйте у менеджера._"
	contactsHeader   = "📞 КОНТАКТЫ\n"

	mainMenuText     = "Выбери что тебя интересует:"
	menuReminderText = "Используй кнопки меню 👇"
	welcomeFormat    = "Привет, %s! 👋\n\n" +
		"🍓 Добро пожаловать в бот оптовой торговли\n" +
		"*замороженными фруктами и ягодами*\n\n" +
		mainMenuText
)

// markdownEscaper escapes the characters that open an entity in Telegram's
// legacy Markdown mode.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// Screen is one fully rendered bot message: text, markup dialect and keyboard.
type Screen struct {
	Text      string
	ParseMode telebot.ParseMode
	Markup    *telebot.ReplyMarkup
}

// SendOptions builds fresh telebot options for the screen.
func (s Screen) SendOptions() *telebot.SendOptions {
	return &telebot.SendOptions{ParseMode: s.ParseMode, ReplyMarkup: s.Markup}
}

// RenderPriceList lists every price item in catalog order, followed by the VAT disclaimer.
func RenderPriceList(items []catalog.PriceItem) string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, priceHeader)
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s\n   💰 %s руб/кг   |   мин. заказ %s кг", item.Name, item.Price.String(), item.MinOrder.String()))
	}
	lines = append(lines, priceDisclaimer)
	return strings.Join(lines, "\n")
}

// RenderStock shows the quantity and unit of each item in stock.
// Items with zero quantity are marked unavailable and their unit is dropped.
func RenderStock(items []catalog.StockItem) string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, stockHeader)
	for _, item := range items {
		status := stockUnavailable
		if item.Quantity.IsPositive() {
			status = fmt.Sprintf("✅ %s %s", item.Quantity.String(), item.Unit)
		}
		lines = append(lines, fmt.Sprintf("%s  —  %s", item.Name, status))
	}
	lines = append(lines, stockDisclaimer)
	return strings.Join(lines, "\n")
}

// RenderUpcoming lists expected shipments, or a fixed notice when nothing is scheduled.
func RenderUpcoming(shipments []catalog.Shipment) string {
	if len(shipments) == 0 {
		return upcomingEmpty
	}
	lines := make([]string, 0, len(shipments)+2)
	lines = append(lines, upcomingHeader)
	for _, s := range shipments {
		lines = append(lines, fmt.Sprintf("%s  —  %s,  %s кг", s.Name, s.Date, s.Quantity.String()))
	}
	lines = append(lines, upcomingNote)
	return strings.Join(lines, "\n")
}

// RenderContacts returns the contact block verbatim. It is sent as plain text.
func RenderContacts(info string) string {
	return contactsHeader + info
}

// Renderer turns a catalog snapshot into ready-to-send screens.
// All screens are rendered once, so repeated requests produce identical output.
type Renderer struct {
	mainMenu   *telebot.ReplyMarkup
	categories map[string]Screen
	menuScreen Screen
	reminder   Screen
}

func NewRenderer(c *catalog.Catalog, channelLink string) *Renderer {
	mainMenu := mainMenuMarkup(channelLink)
	back := backMarkup()

	return &Renderer{
		mainMenu: mainMenu,
		categories: map[string]Screen{
			ButtonPrice:    {Text: RenderPriceList(c.Prices), ParseMode: telebot.ModeMarkdown, Markup: back},
			ButtonStock:    {Text: RenderStock(c.Stock), ParseMode: telebot.ModeMarkdown, Markup: back},
			ButtonUpcoming: {Text: RenderUpcoming(c.Upcoming), ParseMode: telebot.ModeMarkdown, Markup: back},
			ButtonContacts: {Text: RenderContacts(c.Contacts), ParseMode: telebot.ModeDefault, Markup: back},
		},
		menuScreen: Screen{Text: mainMenuText, Markup: mainMenu},
		reminder:   Screen{Text: menuReminderText, Markup: mainMenu},
	}
}

// MainMenu is the navigation root shown in place of a category screen.
func (r *Renderer) MainMenu() Screen {
	return r.menuScreen
}

// Category returns the detail screen for a category button.
func (r *Renderer) Category(id string) (Screen, bool) {
	s, ok := r.categories[id]
	return s, ok
}

// Welcome greets the user by first name and shows the main menu.
// The name is user-controlled, so it is escaped before going into Markdown.
func (r *Renderer) Welcome(firstName string) Screen {
	return Screen{
		Text:      fmt.Sprintf(welcomeFormat, markdownEscaper.Replace(firstName)),
		ParseMode: telebot.ModeMarkdown,
		Markup:    r.mainMenu,
	}
}

// MenuReminder is sent in response to free text.
func (r *Renderer) MenuReminder() Screen {
	return r.reminder
}

func mainMenuMarkup(channelLink string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: "📋 Прайс-лист", Data: ButtonPrice}},
			{{Text: "📦 Остатки на складе", Data: ButtonStock}},
			{{Text: "🚚 Ближайшие приходы", Data: ButtonUpcoming}},
			{{Text: "📞 Контакты", Data: ButtonContacts}},
			{{Text: "📣 Наш канал", URL: channelLink}},
		},
	}
}

func backMarkup() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: "⬅️ Назад в меню", Data: ButtonMenu}},
		},
	}
}
