package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// NextFireInstant returns the next instant after now whose wall clock
// in loc reads hour:minute. If today's target is already reached or
// past, it is tomorrow's; the result is never more than 24h away.
func NextFireInstant(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	target := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !target.After(now) {
		target = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return target
}

// Start registers the daily fire job and starts the scheduler. The task
// runs once per day at hour:minute in loc; a failure inside it never
// stops the loop. Shutdown on the returned scheduler is the only
// cancellation path. The clock is injected so tests can drive fires
// without waiting.
func Start(hour, minute int, loc *time.Location, clock clockwork.Clock, task func(), log *zap.SugaredLogger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithClock(clock),
	)
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(
			gocron.NewAtTime(uint(hour), uint(minute), 0),
		)),
		gocron.NewTask(task),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	log.Infow("планировщик запущен",
		"next_fire", NextFireInstant(clock.Now(), hour, minute, loc).Format(time.RFC3339),
	)
	return s, nil
}
