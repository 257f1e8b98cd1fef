package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Iultina/currency-converter-bot/internal/model"
	"github.com/Iultina/currency-converter-bot/internal/pagination"
)

type action int

const (
	actionUnknown action = iota
	actionCurrentRate
	actionHistory
	actionBackToMain
	actionSubscribe
	actionUnsubscribe
)

const (
	cbCurrentRate   = "current_rate"
	cbHistory       = "history"
	cbHistoryPrefix = "history_"
	cbBackToMain    = "back_to_main"
	cbSubscribe     = "subscribe"
	cbUnsubscribe   = "unsubscribe"
)

const (
	btnCurrentRate = "Текущий курс"
	btnHistory     = "История запросов"
	btnSubscribe   = "Подписаться на обновления"
	btnUnsubscribe = "Отписаться от обновлений"
	btnPrevPage    = "⬅️ Назад"
	btnNextPage    = "Вперёд ➡️"
	btnMainMenu    = "🏠 В меню"
)

// parseAction maps callback data onto the closed action set. The page number
// embedded in history_<N> defaults to 1 for the bare history action.
func parseAction(data string) (action, int) {
	switch data {
	case cbCurrentRate:
		return actionCurrentRate, 0
	case cbHistory:
		return actionHistory, 1
	case cbBackToMain:
		return actionBackToMain, 0
	case cbSubscribe:
		return actionSubscribe, 0
	case cbUnsubscribe:
		return actionUnsubscribe, 0
	}
	if strings.HasPrefix(data, cbHistoryPrefix) {
		page, err := strconv.Atoi(strings.TrimPrefix(data, cbHistoryPrefix))
		if err == nil && page >= 1 {
			return actionHistory, page
		}
	}
	return actionUnknown, 0
}

// mainMenuKeyboard builds the top-level inline menu. The subscription button
// reflects the current flag.
func mainMenuKeyboard(subscribed bool) tgbotapi.InlineKeyboardMarkup {
	subLabel, subAction := btnSubscribe, cbSubscribe
	if subscribed {
		subLabel, subAction = btnUnsubscribe, cbUnsubscribe
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnCurrentRate, cbCurrentRate),
			tgbotapi.NewInlineKeyboardButtonData(btnHistory, cbHistory),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(subLabel, subAction),
		),
	)
}

// historyKeyboard offers prev/next navigation for the window plus a way back
// to the main menu.
func historyKeyboard(window pagination.Page) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton
	if window.HasPrev {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnPrevPage, fmt.Sprintf("%s%d", cbHistoryPrefix, window.Number-1)))
	}
	if window.HasNext {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnNextPage, fmt.Sprintf("%s%d", cbHistoryPrefix, window.Number+1)))
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnMainMenu, cbBackToMain),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// formatHistoryPage renders one page of past requests, newest first.
func formatHistoryPage(entries []model.History, window pagination.Page, currency string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📈 История запросов (стр. %d из %d):\n", window.Number, window.PageCount))
	for _, entry := range entries {
		builder.WriteString(fmt.Sprintf("%s - %s %s\n", entry.Date.Format("2006-01-02 15:04:05"), formatRate(entry.Rate), currency))
	}
	return strings.TrimSpace(builder.String())
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

func currencyLabel(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
