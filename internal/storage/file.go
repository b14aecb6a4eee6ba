package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"telegram-gratitude-journal/internal/models"
)

// FileStore keeps the whole state as one JSON document on disk.
type FileStore struct {
	path string
	log  *zap.SugaredLogger
}

func NewFile(path string, log *zap.SugaredLogger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (f *FileStore) Load() (*models.State, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return models.NewState(), nil
	}
	if err != nil {
		return nil, err
	}

	var st models.State
	if err := json.Unmarshal(data, &st); err != nil {
		f.log.Warnw("состояние повреждено, начинаем с пустого", "path", f.path, "error", err)
		return models.NewState(), nil
	}
	if st.Users == nil {
		st.Users = make(map[int64]*models.UserRecord)
	}
	return &st, nil
}

// Save writes to a temp file and renames so a crash mid-write never
// leaves a truncated document behind.
func (f *FileStore) Save(st *models.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".journal-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
