package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults match the original gratitude-diary bot: four questions at
// 23:00 Moscow time.
const (
	defaultStatePath  = "journal.json"
	defaultReminderAt = "23:00"
	defaultTZ         = "Europe/Moscow"
)

var defaultQuestions = []string{
	"За что я сегодня благодарна(ен)?",
	"Что сегодня принесло мне радость?",
	"Что я сделала(делал) хорошо сегодня?",
	"Что я могу улучшить завтра?",
}

type Config struct {
	TelegramToken string
	StatePath     string // *.db selects sqlite, otherwise a JSON file
	Hour          int
	Minute        int
	Location      *time.Location
	Questions     []string
}

// Load reads the configuration from the environment. Everything here is
// fixed for the lifetime of the process; an invalid value refuses to
// start.
func Load() (Config, error) {
	cfg := Config{
		TelegramToken: getBotToken(),
		StatePath:     envOr("STATE_PATH", defaultStatePath),
	}
	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("токен не найден: отсутствует и Docker Secret, и переменная окружения TELEGRAM_BOT_TOKEN")
	}

	at := envOr("REMINDER_AT", defaultReminderAt)
	hour, minute, err := parseHM(at)
	if err != nil {
		return cfg, fmt.Errorf("REMINDER_AT %q: %w", at, err)
	}
	cfg.Hour, cfg.Minute = hour, minute

	tz := envOr("TZ_NAME", defaultTZ)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return cfg, fmt.Errorf("некорректный часовой пояс %q: %w", tz, err)
	}
	cfg.Location = loc

	cfg.Questions = defaultQuestions
	if raw := strings.TrimSpace(os.Getenv("QUESTIONS")); raw != "" {
		cfg.Questions = nil
		for _, q := range strings.Split(raw, "|") {
			if q = strings.TrimSpace(q); q != "" {
				cfg.Questions = append(cfg.Questions, q)
			}
		}
	}
	if len(cfg.Questions) == 0 {
		return cfg, fmt.Errorf("список вопросов пуст")
	}

	return cfg, nil
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token
		}
	}
	return strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseHM(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ожидается HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("ожидается HH:MM")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("ожидается HH:MM")
	}
	return hour, minute, nil
}
