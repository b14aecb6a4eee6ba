package notify

import (
	"go.uber.org/zap"
)

// Sender delivers one text message to one user. The telegram adapter
// implements it; tests substitute fakes.
type Sender interface {
	SendText(chatID int64, text string) error
}

// Dispatcher fans the question list out to subscribers on a fire event.
type Dispatcher struct {
	sender    Sender
	questions []string
	log       *zap.SugaredLogger
}

func New(sender Sender, questions []string, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{sender: sender, questions: questions, log: log}
}

// Broadcast sends every question, in order, to every id. A failed send
// drops the rest of that user's questions and moves on to the next user;
// there is no retry within the cycle — the next fire resends from the
// first question anyway.
func (d *Dispatcher) Broadcast(ids []int64) {
	for _, id := range ids {
		for _, q := range d.questions {
			if err := d.sender.SendText(id, q); err != nil {
				d.log.Warnw("ошибка при отправке вопроса", "chat_id", id, "error", err)
				break
			}
		}
	}
}
