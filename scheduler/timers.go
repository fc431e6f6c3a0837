package scheduler

import (
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/yohamta/donburi"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id    TimerID
	owner donburi.Entity
	at    time.Duration
	fn    func()
}

// Compare orders timers by due time, then by scheduling order.
func (t *timer) Compare(other queue.Item) int {
	o := other.(*timer)
	switch {
	case t.at < o.at:
		return -1
	case t.at > o.at:
		return 1
	case t.id < o.id:
		return -1
	case t.id > o.id:
		return 1
	}
	return 0
}

// TimerQueue holds one-shot callbacks on the fixed timeline. Cancelled
// timers stay in the heap and are skipped when they surface.
type TimerQueue struct {
	pq   *queue.PriorityQueue
	live map[TimerID]*timer
	next TimerID
}

func NewTimerQueue() *TimerQueue {
	return &TimerQueue{
		pq:   queue.NewPriorityQueue(16, true),
		live: make(map[TimerID]*timer),
	}
}

// Schedule runs fn once the fixed clock reaches at. The timer belongs to
// owner and is dropped by CancelOwner.
func (q *TimerQueue) Schedule(owner donburi.Entity, at time.Duration, fn func()) TimerID {
	q.next++
	t := &timer{id: q.next, owner: owner, at: at, fn: fn}
	q.live[t.id] = t
	// Put only fails on a disposed queue, which TimerQueue never does
	_ = q.pq.Put(t)
	return t.id
}

// Cancel drops a pending timer. It reports whether the timer was pending.
func (q *TimerQueue) Cancel(id TimerID) bool {
	if _, ok := q.live[id]; !ok {
		return false
	}
	delete(q.live, id)
	return true
}

// CancelOwner drops every pending timer owned by the entity and returns
// how many were dropped.
func (q *TimerQueue) CancelOwner(owner donburi.Entity) int {
	n := 0
	for id, t := range q.live {
		if t.owner == owner {
			delete(q.live, id)
			n++
		}
	}
	return n
}

// RunDue fires every live timer due at or before now, earliest first.
// Callbacks may schedule new timers; those due by now fire in the same call.
func (q *TimerQueue) RunDue(now time.Duration) int {
	fired := 0
	for !q.pq.Empty() {
		head := q.pq.Peek().(*timer)
		if head.at > now {
			break
		}
		// non-empty, so Get does not block
		if _, err := q.pq.Get(1); err != nil {
			break
		}
		if _, ok := q.live[head.id]; !ok {
			continue
		}
		delete(q.live, head.id)
		head.fn()
		fired++
	}
	return fired
}

// Pending returns the number of live timers.
func (q *TimerQueue) Pending() int {
	return len(q.live)
}

// PendingFor returns the number of live timers owned by the entity.
func (q *TimerQueue) PendingFor(owner donburi.Entity) int {
	n := 0
	for _, t := range q.live {
		if t.owner == owner {
			n++
		}
	}
	return n
}
