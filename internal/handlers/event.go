package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type EventKind int

const (
	KindCommand EventKind = iota
	KindText
	KindCallback
)

// Event is the normalized form of an inbound telegram update. Exactly
// one payload group is set, selected by Kind.
type Event struct {
	Kind   EventKind
	ChatID int64

	Command string // KindCommand

	Text string // KindText

	CallbackID   string // KindCallback
	CallbackData string
}

// ParseUpdate turns a raw update into an Event. Updates the bot does
// not consume (edits, inline queries, stickers) report ok=false.
func ParseUpdate(upd tgbotapi.Update) (Event, bool) {
	switch {
	case upd.Message != nil && upd.Message.IsCommand():
		return Event{
			Kind:    KindCommand,
			ChatID:  upd.Message.Chat.ID,
			Command: upd.Message.Command(),
		}, true

	case upd.Message != nil && upd.Message.Text != "":
		return Event{
			Kind:   KindText,
			ChatID: upd.Message.Chat.ID,
			Text:   upd.Message.Text,
		}, true

	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		return Event{
			Kind:         KindCallback,
			ChatID:       upd.CallbackQuery.Message.Chat.ID,
			CallbackID:   upd.CallbackQuery.ID,
			CallbackData: upd.CallbackQuery.Data,
		}, true
	}
	return Event{}, false
}
