// Package scheduler drives the two update rates of the game: a variable
// phase once per rendered frame and a fixed phase on a constant step.
package scheduler

import "time"

// Tick is passed to every system. Now is the phase's own clock: the frame
// clock for variable systems and the fixed clock for fixed systems.
type Tick struct {
	Now   time.Duration
	Delta time.Duration
	Frame uint64
}

type System func(Tick)

type Scheduler struct {
	step     time.Duration
	maxSteps int

	variable []System
	fixed    []System
	timers   *TimerQueue

	now      time.Duration
	fixedNow time.Duration
	acc      time.Duration
	frame    uint64
}

// New creates a scheduler with the given fixed step. At most maxSteps fixed
// steps run per frame; leftover time beyond that is dropped.
func New(step time.Duration, maxSteps int) *Scheduler {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Scheduler{
		step:     step,
		maxSteps: maxSteps,
		timers:   NewTimerQueue(),
	}
}

// OnVariableTick registers a system that runs once per Advance, before any
// fixed step. Systems run in registration order.
func (s *Scheduler) OnVariableTick(fn System) {
	s.variable = append(s.variable, fn)
}

// OnFixedTick registers a system that runs on every fixed step, after due
// timers have fired. Systems run in registration order.
func (s *Scheduler) OnFixedTick(fn System) {
	s.fixed = append(s.fixed, fn)
}

func (s *Scheduler) Timers() *TimerQueue { return s.timers }

// Now is the frame clock.
func (s *Scheduler) Now() time.Duration { return s.now }

// FixedNow is the fixed clock. It trails Now by less than one step.
func (s *Scheduler) FixedNow() time.Duration { return s.fixedNow }

func (s *Scheduler) Step() time.Duration { return s.step }

// Advance moves both clocks forward by frame and returns the number of
// fixed steps that ran.
func (s *Scheduler) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	s.frame++
	s.now += frame

	vt := Tick{Now: s.now, Delta: frame, Frame: s.frame}
	for _, sys := range s.variable {
		sys(vt)
	}

	s.acc += frame
	steps := 0
	for s.acc >= s.step && steps < s.maxSteps {
		s.acc -= s.step
		s.fixedNow += s.step
		steps++

		s.timers.RunDue(s.fixedNow)

		ft := Tick{Now: s.fixedNow, Delta: s.step, Frame: s.frame}
		for _, sys := range s.fixed {
			sys(ft)
		}
	}

	// Spiral of death guard: forget the backlog instead of catching up.
	if s.acc >= s.step {
		s.fixedNow += s.acc - s.acc%s.step
		s.acc %= s.step
	}
	return steps
}
