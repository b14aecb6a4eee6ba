package models

// UserRecord holds everything the bot knows about one telegram user.
type UserRecord struct {
	ID         int64               `json:"id"`
	Subscribed bool                `json:"subscribed"`
	Answers    []string            `json:"answers,omitempty"` // in-progress buffer
	History    map[string][]string `json:"history,omitempty"` // YYYY-MM-DD -> completed set
}

// State is the full persisted blob: registry, session buffers and history.
type State struct {
	Users map[int64]*UserRecord `json:"users"`
}

func NewState() *State {
	return &State{Users: make(map[int64]*UserRecord)}
}

// User returns the record for id, creating it lazily. New records start
// unsubscribed with an empty buffer and no history.
func (s *State) User(id int64) *UserRecord {
	u, ok := s.Users[id]
	if !ok {
		u = &UserRecord{ID: id}
		s.Users[id] = u
	}
	return u
}
