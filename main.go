package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"telegram-gratitude-journal/internal/config"
	"telegram-gratitude-journal/internal/handlers"
	"telegram-gratitude-journal/internal/journal"
	"telegram-gratitude-journal/internal/logging"
	"telegram-gratitude-journal/internal/notify"
	"telegram-gratitude-journal/internal/scheduler"
	"telegram-gratitude-journal/internal/storage"
	"telegram-gratitude-journal/internal/utils"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	logger := logging.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("конфигурация", "error", err)
	}

	utils.Must(tgbotapi.SetLogger(logging.NewBotLogger(logger)))
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatalw("подключение к telegram", "error", err)
	}

	store, err := storage.Open(cfg.StatePath, logger)
	if err != nil {
		logger.Fatalw("хранилище", "path", cfg.StatePath, "error", err)
	}

	clock := clockwork.NewRealClock()
	j, err := journal.New(store, cfg.Questions, cfg.Location, clock, logger)
	if err != nil {
		logger.Fatalw("загрузка состояния", "error", err)
	}

	h := handlers.New(bot, j, logger)
	dispatcher := notify.New(h, cfg.Questions, logger)

	sched, err := scheduler.Start(cfg.Hour, cfg.Minute, cfg.Location, clock, func() {
		dispatcher.Broadcast(j.ActiveSubscribers())
	}, logger)
	if err != nil {
		logger.Fatalw("планировщик", "error", err)
	}
	defer sched.Shutdown()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		ev, ok := handlers.ParseUpdate(upd)
		if !ok {
			continue
		}
		h.HandleEvent(ev)
	}
}
