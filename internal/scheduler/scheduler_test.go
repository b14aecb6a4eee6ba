package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func moscow(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return loc
}

func TestNextFireInstant(t *testing.T) {
	loc := moscow(t)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before today's target",
			now:  time.Date(2024, 3, 10, 12, 30, 0, 0, loc),
			want: time.Date(2024, 3, 10, 23, 0, 0, 0, loc),
		},
		{
			// reaching the target counts as past: next fire is tomorrow
			name: "exactly at target",
			now:  time.Date(2024, 3, 10, 23, 0, 0, 0, loc),
			want: time.Date(2024, 3, 11, 23, 0, 0, 0, loc),
		},
		{
			name: "past today's target",
			now:  time.Date(2024, 3, 10, 23, 0, 1, 0, loc),
			want: time.Date(2024, 3, 11, 23, 0, 0, 0, loc),
		},
		{
			name: "now in another zone",
			now:  time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC), // 00:30 next day in Moscow
			want: time.Date(2024, 3, 11, 23, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFireInstant(tt.now, 23, 0, loc)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestNextFireInstantAcrossDSTGap(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Europe/Berlin skips 02:00-03:00 on 2024-03-31.
	now := time.Date(2024, 3, 31, 1, 0, 0, 0, berlin) // still CET
	got := NextFireInstant(now, 23, 0, berlin)

	want := time.Date(2024, 3, 31, 23, 0, 0, 0, berlin) // CEST
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
	// 22h on the wall, 21h of real time across the skipped hour
	assert.Equal(t, 21*time.Hour, got.Sub(now))

	// rolling over midnight into the transition day
	now = time.Date(2024, 3, 30, 23, 30, 0, 0, berlin)
	got = NextFireInstant(now, 9, 0, berlin)
	want = time.Date(2024, 3, 31, 9, 0, 0, 0, berlin)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
	local := got.In(berlin)
	assert.Equal(t, 9, local.Hour())
	assert.Equal(t, 0, local.Minute())
	assert.LessOrEqual(t, got.Sub(now), 24*time.Hour)
}

func TestNextFireInstantProperties(t *testing.T) {
	loc := moscow(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)

	for i := 0; i < 48; i++ {
		now = now.Add(37 * time.Minute)
		got := NextFireInstant(now, 9, 15, loc)

		assert.True(t, got.After(now), "fire instant must be strictly ahead")
		assert.LessOrEqual(t, got.Sub(now), 24*time.Hour)
		local := got.In(loc)
		assert.Equal(t, 9, local.Hour())
		assert.Equal(t, 15, local.Minute())
	}
}

func TestStartFiresOncePerBoundary(t *testing.T) {
	loc := moscow(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 10, 22, 0, 0, 0, loc))

	fired := make(chan struct{}, 8)
	s, err := Start(23, 0, loc, clock, func() { fired <- struct{}{} }, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer s.Shutdown()

	clock.BlockUntil(1) // job timer armed
	clock.Advance(time.Hour)

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not fire at the configured time")
	}

	// no second fire without crossing the next boundary
	select {
	case <-fired:
		t.Fatal("scheduler fired more than once")
	case <-time.After(100 * time.Millisecond):
	}
}
