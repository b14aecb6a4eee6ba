package storage

import (
	"database/sql"
	"embed"

	_ "modernc.org/sqlite"

	"go.uber.org/zap"

	"telegram-gratitude-journal/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// SqliteStore keeps the state in a sqlite database. The Save contract is
// still whole-blob: every call rewrites the tables in one transaction.
type SqliteStore struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewSqlite(path string, log *zap.SugaredLogger) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &SqliteStore{db: db, log: log}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

func (s *SqliteStore) Close() error { return s.db.Close() }

func (s *SqliteStore) Load() (*models.State, error) {
	st := models.NewState()

	rows, err := s.db.Query(`SELECT id, subscribed FROM users`)
	if err != nil {
		s.log.Warnw("не удалось прочитать состояние, начинаем с пустого", "error", err)
		return models.NewState(), nil
	}
	for rows.Next() {
		var u models.UserRecord
		var sub int
		if err := rows.Scan(&u.ID, &sub); err != nil {
			rows.Close()
			return nil, err
		}
		u.Subscribed = sub == 1
		st.Users[u.ID] = &u
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`SELECT user_id, text FROM answers ORDER BY user_id, idx`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			rows.Close()
			return nil, err
		}
		u := st.User(id)
		u.Answers = append(u.Answers, text)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`SELECT user_id, day, text FROM history ORDER BY user_id, day, idx`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int64
		var day, text string
		if err := rows.Scan(&id, &day, &text); err != nil {
			rows.Close()
			return nil, err
		}
		u := st.User(id)
		if u.History == nil {
			u.History = make(map[string][]string)
		}
		u.History[day] = append(u.History[day], text)
	}
	rows.Close()
	return st, rows.Err()
}

func (s *SqliteStore) Save(st *models.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tbl := range []string{"answers", "history", "users"} {
		if _, err := tx.Exec(`DELETE FROM ` + tbl); err != nil {
			return err
		}
	}

	for id, u := range st.Users {
		sub := 0
		if u.Subscribed {
			sub = 1
		}
		if _, err := tx.Exec(`INSERT INTO users (id, subscribed) VALUES (?,?)`, id, sub); err != nil {
			return err
		}
		for i, text := range u.Answers {
			if _, err := tx.Exec(`INSERT INTO answers (user_id, idx, text) VALUES (?,?,?)`, id, i, text); err != nil {
				return err
			}
		}
		for day, set := range u.History {
			for i, text := range set {
				if _, err := tx.Exec(`INSERT INTO history (user_id, day, idx, text) VALUES (?,?,?,?)`, id, day, i, text); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}
