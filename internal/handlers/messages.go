package handlers

// HandleText routes free text: menu keywords first, anything else is an
// answer for the current session. Subscription is not checked — whoever
// writes to the bot may keep a diary. A success ack goes out only after
// the state has been flushed; a failed save gets the retry message
// instead, so the user is never told something was recorded that a
// restart could lose.
func (h *Handler) HandleText(chatID int64, text string) {
	switch text {
	case menuSubscribe:
		if err := h.Journal.Subscribe(chatID); err != nil {
			h.Log.Errorw("ошибка подписки", "chat_id", chatID, "error", err)
			h.send(chatID, txtSaveFailed)
			return
		}
		h.send(chatID, txtSubscribed)

	case menuUnsubscribe:
		if err := h.Journal.Unsubscribe(chatID); err != nil {
			h.Log.Errorw("ошибка отписки", "chat_id", chatID, "error", err)
			h.send(chatID, txtSaveFailed)
			return
		}
		h.send(chatID, txtUnsubscribed)

	case menuHistory:
		h.showHistoryDates(chatID)

	default:
		done, err := h.Journal.SubmitAnswer(chatID, text)
		if err != nil {
			h.Log.Errorw("ошибка записи ответа", "chat_id", chatID, "error", err)
			h.send(chatID, txtSaveFailed)
			return
		}
		if done {
			h.send(chatID, txtCompleted)
			return
		}
		h.send(chatID, txtRecorded)
	}
}
