package storage

import (
	"strings"

	"go.uber.org/zap"

	"telegram-gratitude-journal/internal/models"
)

// Store persists the full bot state. Implementations must write durably
// before returning from Save; Load on a missing or unreadable source
// returns an empty state, never an error that blocks startup.
type Store interface {
	Load() (*models.State, error)
	Save(*models.State) error
}

// Open picks a backend by path: "*.db" is sqlite, anything else a JSON file.
func Open(path string, log *zap.SugaredLogger) (Store, error) {
	if strings.HasSuffix(path, ".db") {
		return NewSqlite(path, log)
	}
	return NewFile(path, log), nil
}
