package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipLoopsAndFreezes(t *testing.T) {
	c := NewClip(0, 2, 1, 0)
	for range 3 {
		c.Update()
	}
	assert.Equal(t, 0, c.Frame(), "wrapped back to first")
	assert.True(t, c.Looped)

	c = NewClip(0, 2, 1, 0)
	c.FreezeOnComplete = true
	for range 5 {
		c.Update()
	}
	assert.Equal(t, 2, c.Frame())
}

func TestAnimatorLocomotion(t *testing.T) {
	a := NewAnimator(DefaultClips())
	assert.Equal(t, ClipIdle, a.Current())

	a.SetFloat(ParamLocomotionSpeed, 1)
	a.Update()
	assert.Equal(t, ClipRun, a.Current())
	assert.Equal(t, 1.0, a.Float(ParamLocomotionSpeed))

	a.SetFloat(ParamLocomotionSpeed, 0)
	a.Update()
	assert.Equal(t, ClipIdle, a.Current())
}

func TestAnimatorTriggerPlaysToCompletion(t *testing.T) {
	clips := map[string]*Clip{
		ClipIdle:   NewClip(0, 0, 1, 0),
		ClipRun:    NewClip(0, 0, 1, 0),
		ClipAttack: NewClip(0, 2, 1, 0),
	}
	a := NewAnimator(clips)
	a.SetFloat(ParamLocomotionSpeed, 1)

	a.SetTrigger(TriggerAttackSwing)
	assert.Equal(t, ClipAttack, a.Current())
	assert.Equal(t, 1, a.Fired(TriggerAttackSwing))

	a.Update()
	a.Update()
	assert.Equal(t, ClipAttack, a.Current(), "still swinging")

	a.Update() // wraps, marks looped
	a.Update()
	assert.Equal(t, ClipRun, a.Current())
}

func TestAnimatorUnknownTriggerOnlyCounts(t *testing.T) {
	a := NewAnimator(DefaultClips())
	a.SetTrigger("wave")
	assert.Equal(t, 1, a.Fired("wave"))
	assert.Equal(t, ClipIdle, a.Current())
}
