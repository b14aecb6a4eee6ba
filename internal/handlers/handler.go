package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"telegram-gratitude-journal/internal/journal"
)

// BotAPI is the slice of *tgbotapi.BotAPI the handlers use.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot     BotAPI
	Journal *journal.Service
	Log     *zap.SugaredLogger
}

func New(bot BotAPI, j *journal.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{Bot: bot, Journal: j, Log: log}
}

// HandleEvent dispatches one normalized inbound event.
func (h *Handler) HandleEvent(ev Event) {
	switch ev.Kind {
	case KindCommand:
		h.HandleCommand(ev.ChatID, ev.Command)
	case KindText:
		h.HandleText(ev.ChatID, ev.Text)
	case KindCallback:
		h.HandleCallback(ev.ChatID, ev.CallbackID, ev.CallbackData)
	}
}

// SendText implements notify.Sender for the fan-out dispatcher.
func (h *Handler) SendText(chatID int64, text string) error {
	_, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (h *Handler) send(chatID int64, text string) {
	if err := h.SendText(chatID, text); err != nil {
		h.Log.Warnw("ошибка отправки сообщения", "chat_id", chatID, "error", err)
	}
}
