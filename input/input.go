// Package input turns polled device frames into edge-detected action state.
package input

import "github.com/automoto/hollowvale/config"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Frame is one raw sample of every action plus the horizontal axis.
type Frame struct {
	Pressed [config.ActionCount]bool
	Axis    float64 // [-1, 1], negative is left
}

// Source produces one Frame per variable tick.
type Source interface {
	Poll() Frame
}

// State stores the current and previous frame. JustPressed/JustReleased are
// computed on demand by comparing the two.
type State struct {
	Current  Frame
	Previous Frame
}

// Push swaps buffers: current becomes previous, then f becomes current.
func (s *State) Push(f Frame) {
	s.Previous = s.Current
	f.Axis = clampAxis(f.Axis)
	s.Current = f
}

// Action returns the full ActionState for an action ID.
func (s *State) Action(id config.ActionID) ActionState {
	curr := s.Current.Pressed[id]
	prev := s.Previous.Pressed[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Axis returns the horizontal axis of the current frame.
func (s *State) Axis() float64 {
	return s.Current.Axis
}

func clampAxis(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// Script is a Source that replays prepared frames, then repeats the last one.
// Bots and tests drive the controller with it.
type Script struct {
	Frames []Frame
	next   int
}

func (s *Script) Poll() Frame {
	if len(s.Frames) == 0 {
		return Frame{}
	}
	if s.next >= len(s.Frames) {
		return s.Frames[len(s.Frames)-1]
	}
	f := s.Frames[s.next]
	s.next++
	return f
}

// Press builds a frame with the given actions held.
func Press(ids ...config.ActionID) Frame {
	var f Frame
	for _, id := range ids {
		f.Pressed[id] = true
	}
	return f
}
