package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const step = 20 * time.Millisecond

func TestAdvanceRunsVariableOnceThenFixedSteps(t *testing.T) {
	s := New(step, 5)

	var log []string
	s.OnVariableTick(func(Tick) { log = append(log, "var") })
	s.OnFixedTick(func(Tick) { log = append(log, "fixed") })

	assert.Equal(t, 2, s.Advance(45*time.Millisecond))
	assert.Equal(t, []string{"var", "fixed", "fixed"}, log)

	// the 5ms remainder carries into the next frame
	log = nil
	assert.Equal(t, 1, s.Advance(15*time.Millisecond))
	assert.Equal(t, []string{"var", "fixed"}, log)

	log = nil
	assert.Equal(t, 0, s.Advance(5*time.Millisecond))
	assert.Equal(t, []string{"var"}, log)
}

func TestAdvanceClocks(t *testing.T) {
	s := New(step, 5)

	var fixedTimes []time.Duration
	var varTick Tick
	s.OnVariableTick(func(tk Tick) { varTick = tk })
	s.OnFixedTick(func(tk Tick) { fixedTimes = append(fixedTimes, tk.Now) })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, Tick{Now: 50 * time.Millisecond, Delta: 50 * time.Millisecond, Frame: 1}, varTick)
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 40 * time.Millisecond}, fixedTimes)
	assert.Equal(t, 40*time.Millisecond, s.FixedNow())
	assert.Equal(t, 50*time.Millisecond, s.Now())
}

func TestAdvanceCapsFixedSteps(t *testing.T) {
	s := New(step, 3)
	n := 0
	s.OnFixedTick(func(Tick) { n++ })

	assert.Equal(t, 3, s.Advance(time.Second))
	assert.Equal(t, 3, n)

	// backlog was dropped rather than replayed
	assert.Equal(t, 1, s.Advance(step))
	assert.LessOrEqual(t, s.FixedNow(), s.Now())
}

func TestTimersFireBeforeFixedSystems(t *testing.T) {
	s := New(step, 5)
	owner := donburi.Entity(1)

	var log []string
	s.Timers().Schedule(owner, 40*time.Millisecond, func() { log = append(log, "timer") })
	s.OnFixedTick(func(tk Tick) { log = append(log, "fixed@"+tk.Now.String()) })

	s.Advance(40 * time.Millisecond)
	assert.Equal(t, []string{"fixed@20ms", "timer", "fixed@40ms"}, log)
	assert.Zero(t, s.Timers().Pending())
}

func TestTimerQueueOrderAndOnce(t *testing.T) {
	q := NewTimerQueue()
	var fired []string
	q.Schedule(1, 30*time.Millisecond, func() { fired = append(fired, "c") })
	q.Schedule(1, 10*time.Millisecond, func() { fired = append(fired, "a") })
	q.Schedule(2, 10*time.Millisecond, func() { fired = append(fired, "b") })

	assert.Equal(t, 0, q.RunDue(5*time.Millisecond))
	assert.Equal(t, 2, q.RunDue(20*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, fired, "ties fire in scheduling order")

	assert.Equal(t, 1, q.RunDue(time.Second))
	assert.Equal(t, 0, q.RunDue(time.Second), "timers fire exactly once")
	assert.Equal(t, []string{"a", "b", "c"}, fired)
}

func TestTimerQueueCancel(t *testing.T) {
	q := NewTimerQueue()
	fired := 0
	id := q.Schedule(1, 10*time.Millisecond, func() { fired++ })

	require.True(t, q.Cancel(id))
	assert.False(t, q.Cancel(id), "second cancel is a no-op")
	assert.Equal(t, 0, q.RunDue(time.Second))
	assert.Zero(t, fired)
}

func TestTimerQueueCancelOwner(t *testing.T) {
	q := NewTimerQueue()
	player, npc := donburi.Entity(1), donburi.Entity(2)
	fired := map[donburi.Entity]int{}

	q.Schedule(player, 10*time.Millisecond, func() { fired[player]++ })
	q.Schedule(player, 20*time.Millisecond, func() { fired[player]++ })
	q.Schedule(npc, 20*time.Millisecond, func() { fired[npc]++ })
	require.Equal(t, 2, q.PendingFor(player))

	assert.Equal(t, 2, q.CancelOwner(player))
	assert.Zero(t, q.PendingFor(player))
	assert.Equal(t, 1, q.Pending())

	q.RunDue(time.Second)
	assert.Zero(t, fired[player])
	assert.Equal(t, 1, fired[npc])
}

func TestTimerScheduledFromCallback(t *testing.T) {
	q := NewTimerQueue()
	var fired []string
	q.Schedule(1, 10*time.Millisecond, func() {
		fired = append(fired, "first")
		q.Schedule(1, 10*time.Millisecond, func() { fired = append(fired, "chained") })
		q.Schedule(1, 50*time.Millisecond, func() { fired = append(fired, "later") })
	})

	q.RunDue(20 * time.Millisecond)
	assert.Equal(t, []string{"first", "chained"}, fired)
	assert.Equal(t, 1, q.Pending())
}
