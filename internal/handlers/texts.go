package handlers

const (
	menuSubscribe   = "Подписаться"
	menuUnsubscribe = "Отписаться"
	menuHistory     = "История"

	cbHistoryPrefix = "hist:"
	cbBack          = "back"

	txtGreeting = "Привет! Я буду напоминать тебе заполнять дневник благодарности каждый день. " +
		"Нажми «Подписаться», чтобы получать вопросы, и просто отвечай на них по очереди!"
	txtSubscribed   = "Вы подписались на ежедневные напоминания!"
	txtUnsubscribed = "Вы отписались от напоминаний. История сохранена."
	txtRecorded     = "Записано! Спасибо."
	txtSaveFailed   = "Не удалось сохранить. Попробуйте ещё раз."
	txtCompleted    = "Дневник за сегодня заполнен. Отличная работа!"
	txtNoHistory    = "История пока пуста."
	txtPickDay      = "Выберите день:"
	txtDayNotFound  = "Записей за этот день нет."
)
