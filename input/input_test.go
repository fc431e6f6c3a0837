package input

import (
	"testing"

	"github.com/automoto/hollowvale/config"
	"github.com/stretchr/testify/assert"
)

func TestStateEdges(t *testing.T) {
	var s State

	s.Push(Press(config.ActionJump))
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, s.Action(config.ActionJump))

	s.Push(Press(config.ActionJump))
	assert.Equal(t, ActionState{Pressed: true}, s.Action(config.ActionJump), "held is not a new edge")

	s.Push(Frame{})
	assert.Equal(t, ActionState{JustReleased: true}, s.Action(config.ActionJump))

	s.Push(Frame{})
	assert.Equal(t, ActionState{}, s.Action(config.ActionJump))
}

func TestStateClampsAxis(t *testing.T) {
	var s State
	s.Push(Frame{Axis: 3})
	assert.Equal(t, 1.0, s.Axis())
	s.Push(Frame{Axis: -1.5})
	assert.Equal(t, -1.0, s.Axis())
	s.Push(Frame{Axis: 0.4})
	assert.Equal(t, 0.4, s.Axis())
}

func TestScriptRepeatsLastFrame(t *testing.T) {
	src := &Script{Frames: []Frame{Press(config.ActionRoll), {Axis: 1}}}
	assert.True(t, src.Poll().Pressed[config.ActionRoll])
	assert.Equal(t, 1.0, src.Poll().Axis)
	assert.Equal(t, 1.0, src.Poll().Axis)

	assert.Equal(t, Frame{}, (&Script{}).Poll())
}
