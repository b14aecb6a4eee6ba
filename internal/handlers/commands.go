package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) HandleCommand(chatID int64, cmd string) {
	switch cmd {
	case "start":
		h.HandleStart(chatID)
	case "history":
		h.showHistoryDates(chatID)
	}
}

// /start greets the user and shows the menu keyboard. No record is
// created yet: the registry stays lazy until a subscribe or an answer.
func (h *Handler) HandleStart(chatID int64) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuSubscribe),
			tgbotapi.NewKeyboardButton(menuUnsubscribe),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuHistory),
		),
	)

	reply := tgbotapi.NewMessage(chatID, txtGreeting)
	reply.ReplyMarkup = kb
	if _, err := h.Bot.Send(reply); err != nil {
		h.Log.Warnw("ошибка отправки приветствия", "chat_id", chatID, "error", err)
	}
}
