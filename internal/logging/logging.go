package logging

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

// botLogger routes the telegram library's own log lines through zap.
type botLogger struct {
	logger *zap.SugaredLogger
}

func NewBotLogger(logger *zap.SugaredLogger) tgbotapi.BotLogger {
	return botLogger{logger: logger}
}

func (b botLogger) Println(v ...interface{}) {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			b.logger.Error(err)
			return
		}
	}
	b.logger.Info(v...)
}

func (b botLogger) Printf(format string, v ...interface{}) {
	b.logger.Infof(format, v...)
}
