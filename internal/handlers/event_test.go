package handlers

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandUpdate(chatID int64, text string, cmdLen int) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: cmdLen},
			},
		},
	}
}

func TestParseUpdateCommand(t *testing.T) {
	ev, ok := ParseUpdate(commandUpdate(10, "/start", 6))
	require.True(t, ok)
	assert.Equal(t, KindCommand, ev.Kind)
	assert.Equal(t, int64(10), ev.ChatID)
	assert.Equal(t, "start", ev.Command)
}

func TestParseUpdateText(t *testing.T) {
	ev, ok := ParseUpdate(tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 20},
			Text: "мой ответ",
		},
	})
	require.True(t, ok)
	assert.Equal(t, KindText, ev.Kind)
	assert.Equal(t, int64(20), ev.ChatID)
	assert.Equal(t, "мой ответ", ev.Text)
}

func TestParseUpdateCallback(t *testing.T) {
	ev, ok := ParseUpdate(tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb1",
			Data: "hist:2024-03-10",
			Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 30},
			},
		},
	})
	require.True(t, ok)
	assert.Equal(t, KindCallback, ev.Kind)
	assert.Equal(t, int64(30), ev.ChatID)
	assert.Equal(t, "cb1", ev.CallbackID)
	assert.Equal(t, "hist:2024-03-10", ev.CallbackData)
}

func TestParseUpdateIgnoresUnsupported(t *testing.T) {
	// sticker-only message: no text, no command
	_, ok := ParseUpdate(tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat:    &tgbotapi.Chat{ID: 40},
			Sticker: &tgbotapi.Sticker{FileID: "s"},
		},
	})
	assert.False(t, ok)

	// callback without an attached message
	_, ok = ParseUpdate(tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb2", Data: "back"},
	})
	assert.False(t, ok)

	_, ok = ParseUpdate(tgbotapi.Update{})
	assert.False(t, ok)
}
