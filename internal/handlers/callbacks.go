package handlers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-gratitude-journal/internal/utils"
)

// HandleCallback serves the history browser: a date button shows that
// day's answers, "back" returns to the date list. Anything else is a
// stale or malformed payload and is ignored.
func (h *Handler) HandleCallback(chatID int64, callbackID, data string) {
	// always answer to drop the client's loading spinner
	_, _ = h.Bot.Request(tgbotapi.NewCallback(callbackID, ""))

	switch {
	case strings.HasPrefix(data, cbHistoryPrefix):
		h.showHistoryEntry(chatID, strings.TrimPrefix(data, cbHistoryPrefix))
	case data == cbBack:
		h.showHistoryDates(chatID)
	}
}

func (h *Handler) showHistoryDates(chatID int64) {
	days := h.Journal.HistoryDates(chatID)
	if len(days) == 0 {
		h.send(chatID, txtNoHistory)
		return
	}
	utils.SortDatesDesc(days)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, day := range days {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(day, cbHistoryPrefix+day),
		))
	}

	msg := tgbotapi.NewMessage(chatID, txtPickDay)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := h.Bot.Send(msg); err != nil {
		h.Log.Warnw("ошибка отправки истории", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) showHistoryEntry(chatID int64, day string) {
	set, ok := h.Journal.HistoryEntry(chatID, day)
	if !ok {
		h.send(chatID, txtDayNotFound)
		return
	}

	var b strings.Builder
	b.WriteString(day)
	questions := h.Journal.Questions()
	for i, answer := range set {
		b.WriteString("\n\n")
		if i < len(questions) {
			b.WriteString(questions[i])
			b.WriteString("\n")
		}
		b.WriteString("— ")
		b.WriteString(answer)
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("← Назад", cbBack),
		),
	)
	if _, err := h.Bot.Send(msg); err != nil {
		h.Log.Warnw("ошибка отправки записи", "chat_id", chatID, "error", err)
	}
}
