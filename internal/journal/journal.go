package journal

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"telegram-gratitude-journal/internal/models"
	"telegram-gratitude-journal/internal/storage"
)

// Service owns the shared state: subscriber registry, per-user answer
// sessions and the dated history archive. Every mutation is flushed
// through the store before the call returns, so a restart never loses
// an acknowledged change. One mutex serializes all mutations, which
// covers the single-writer-per-user rule.
type Service struct {
	mu        sync.Mutex
	state     *models.State
	store     storage.Store
	questions []string
	loc       *time.Location
	clock     clockwork.Clock
	log       *zap.SugaredLogger
}

func New(store storage.Store, questions []string, loc *time.Location, clock clockwork.Clock, log *zap.SugaredLogger) (*Service, error) {
	st, err := store.Load()
	if err != nil {
		return nil, err
	}
	s := &Service{
		state:     st,
		store:     store,
		questions: questions,
		loc:       loc,
		clock:     clock,
		log:       log,
	}
	return s, nil
}

func (s *Service) Questions() []string { return s.questions }

// Subscribe flips the flag on, creating the record if needed. Calling it
// twice is the same as calling it once. A failed flush rolls the change
// back so memory never runs ahead of disk.
func (s *Service) Subscribe(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.state.Users[id]
	u := s.state.User(id)
	wasSubscribed := u.Subscribed
	u.Subscribed = true
	if err := s.save(); err != nil {
		if existed {
			u.Subscribed = wasSubscribed
		} else {
			delete(s.state.Users, id)
		}
		return err
	}
	return nil
}

// Unsubscribe is a no-op for users the bot has never seen: it must not
// create a record.
func (s *Service) Unsubscribe(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.state.Users[id]
	if !ok {
		return nil
	}
	wasSubscribed := u.Subscribed
	u.Subscribed = false
	if err := s.save(); err != nil {
		u.Subscribed = wasSubscribed
		return err
	}
	return nil
}

// ActiveSubscribers returns a snapshot of subscribed user ids. Order is
// map order, deliberately unspecified.
func (s *Service) ActiveSubscribers() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, u := range s.state.Users {
		if u.Subscribed {
			ids = append(ids, id)
		}
	}
	return ids
}

// SubmitAnswer appends text to the user's in-progress buffer. The answer
// that fills the buffer to the question count archives the whole set
// under today's date and resets the buffer in the same step; done
// reports whether that happened. Subscription state is not checked —
// anyone who messages the bot may keep a session. A failed flush rolls
// the whole step back, so a retried answer is not appended twice.
func (s *Service) SubmitAnswer(id int64, text string) (done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.state.Users[id]
	u := s.state.User(id)
	prevAnswers := u.Answers

	u.Answers = append(u.Answers, text)
	var day string
	var prevSet []string
	var hadDay bool
	if len(u.Answers) == len(s.questions) {
		if u.History == nil {
			u.History = make(map[string][]string)
		}
		day = s.todayKey()
		prevSet, hadDay = u.History[day]
		u.History[day] = u.Answers // last write wins for the day
		u.Answers = nil
		done = true
	}

	if err := s.save(); err != nil {
		u.Answers = prevAnswers
		if done {
			if hadDay {
				u.History[day] = prevSet
			} else {
				delete(u.History, day)
			}
		}
		if !existed {
			delete(s.state.Users, id)
		}
		return false, err
	}
	return done, nil
}

// Answers returns a copy of the user's in-progress buffer.
func (s *Service) Answers(id int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.state.Users[id]
	if !ok {
		return nil
	}
	return append([]string(nil), u.Answers...)
}

// HistoryDates returns the archived date keys for a user, unsorted.
func (s *Service) HistoryDates(id int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.state.Users[id]
	if !ok {
		return nil
	}
	var days []string
	for day := range u.History {
		days = append(days, day)
	}
	return days
}

// HistoryEntry returns the archived answer set for one day.
func (s *Service) HistoryEntry(id int64, day string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.state.Users[id]
	if !ok {
		return nil, false
	}
	set, ok := u.History[day]
	if !ok {
		return nil, false
	}
	return append([]string(nil), set...), true
}

// todayKey is the calendar date in the scheduler's timezone, not the
// user's. A session finished after midnight lands on the finish day.
func (s *Service) todayKey() string {
	return s.clock.Now().In(s.loc).Format("2006-01-02")
}

func (s *Service) save() error {
	if err := s.store.Save(s.state); err != nil {
		s.log.Errorw("не удалось сохранить состояние", "error", err)
		return err
	}
	return nil
}
