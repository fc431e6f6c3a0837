package systems

import (
	"testing"
	"time"

	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmRollNeedsEdgeAndCooldown(t *testing.T) {
	r := newRig(t)
	r.fixed(1)

	a := r.ctrl.Abilities
	assert.False(t, a.ArmRoll(held, r.tick()), "holding is not a press")
	require.True(t, a.ArmRoll(pressed, r.tick()))
	assert.True(t, r.p().Rolling)
	assert.Equal(t, r.now+r.cfg.Roll.Cooldown, r.p().NextRollTime)

	assert.False(t, a.ArmRoll(pressed, r.tick()), "still cooling down")

	r.now += r.cfg.Roll.Cooldown
	assert.True(t, a.ArmRoll(pressed, r.tick()))
}

func TestArmRollRefusedInTheAir(t *testing.T) {
	r := newRig(t)
	r.fixed(1)
	r.body().Velocity.Y = -50

	assert.False(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))
	assert.False(t, r.p().Rolling)
	assert.Zero(t, r.p().NextRollTime)
}

func TestRollAppliesImpulseOnceAndResets(t *testing.T) {
	r := newRig(t)
	r.fixed(1)
	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))

	r.fixed(1)
	assert.InDelta(t, r.cfg.Roll.Impulse/r.cfg.Player.Mass, r.body().Velocity.X, 1e-9)
	assert.Equal(t, 1, r.timers.PendingFor(r.player.Entity()))
	assert.Equal(t, 1, r.anim().Fired(animation.TriggerAttackSwing))

	r.fixed(5)
	assert.Equal(t, 1, r.anim().Fired(animation.TriggerAttackSwing), "impulse is not re-applied")
	assert.Equal(t, 1, r.timers.PendingFor(r.player.Entity()))
	assert.True(t, r.p().Rolling)

	steps := int(r.cfg.Roll.Duration / r.cfg.Scheduler.FixedStep)
	r.fixed(steps)
	p := r.p()
	assert.False(t, p.Rolling)
	assert.False(t, p.RollImpulseApplied)
	assert.False(t, p.RollTimerArmed)
	assert.Zero(t, r.timers.PendingFor(r.player.Entity()))
	assert.Zero(t, r.body().Velocity.X, "control returns to the move axis")
}

func TestRollEndsAtStartPlusDuration(t *testing.T) {
	r := newRig(t)
	r.fixed(1)
	start := r.now
	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))
	assert.Equal(t, start, r.p().RollStartTime)

	for r.now+r.cfg.Scheduler.FixedStep < start+r.cfg.Roll.Duration {
		r.fixed(1)
	}
	assert.True(t, r.p().Rolling, "one step before the deadline")

	r.fixed(1)
	assert.Equal(t, start+r.cfg.Roll.Duration, r.now)
	assert.False(t, r.p().Rolling)
}

func TestRollEveryTickReappliesImpulse(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Roll.ImpulseMode = config.RollImpulseEveryTick })
	r.fixed(1)
	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))

	r.fixed(4)
	assert.Equal(t, 4, r.anim().Fired(animation.TriggerAttackSwing))
	assert.Equal(t, 1, r.timers.PendingFor(r.player.Entity()), "one reset timer per roll")
	assert.InDelta(t, r.cfg.Roll.Impulse, r.body().Velocity.X, 1e-9)
}

func TestRearmDuringRollKeepsSingleTimer(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Roll.Cooldown = 0 })
	r.fixed(1)
	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))
	r.fixed(1)

	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))
	r.fixed(1)
	assert.Equal(t, 1, r.timers.PendingFor(r.player.Entity()))
	assert.True(t, r.p().RollImpulseApplied, "flags are kept while a roll is running")
}

func TestRollFacesLeft(t *testing.T) {
	r := newRig(t)
	r.fixed(1)
	r.ctrl.Locomotion.Flip(r.player)
	require.True(t, r.ctrl.Abilities.ArmRoll(pressed, r.tick()))

	r.fixed(1)
	assert.Less(t, r.body().Velocity.X, 0.0)
}

func TestAttackWithoutCooldownFiresEveryPress(t *testing.T) {
	r := newRig(t)
	a := r.ctrl.Abilities

	assert.True(t, a.Attack(pressed, r.tick()))
	assert.True(t, a.Attack(pressed, r.tick()))
	assert.False(t, a.Attack(held, r.tick()))
	assert.Equal(t, 2, r.anim().Fired(animation.TriggerAttackSwing))
	assert.Equal(t, animation.ClipAttack, r.anim().Current())
}

func TestAttackCooldown(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Attack.Cooldown = 500 * time.Millisecond })
	a := r.ctrl.Abilities

	assert.True(t, a.Attack(pressed, r.tick()))
	assert.False(t, a.Attack(pressed, r.tick()))

	r.now += 499 * time.Millisecond
	assert.False(t, a.Attack(pressed, r.tick()))

	r.now += time.Millisecond
	assert.True(t, a.Attack(pressed, r.tick()))
	assert.Equal(t, 2, r.anim().Fired(animation.TriggerAttackSwing))
}
