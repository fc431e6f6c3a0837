package systems

import (
	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/sirupsen/logrus"
	dmath "github.com/yohamta/donburi/features/math"
)

// Abilities handles the roll and the melee swing.
type Abilities struct {
	deps Deps
	log  logrus.FieldLogger
}

func NewAbilities(deps Deps) *Abilities {
	return &Abilities{deps: deps, log: deps.Log.WithField("system", "abilities")}
}

// ArmRoll starts a roll on the rising edge once the cooldown has passed.
// Rolling from the air is not allowed.
func (a *Abilities) ArmRoll(roll input.ActionState, tick scheduler.Tick) bool {
	if !roll.JustPressed {
		return false
	}
	pp, ok := a.deps.player()
	if !ok {
		return false
	}
	p := pp.player
	if tick.Now < p.NextRollTime || pp.body.Velocity.Y != 0 {
		return false
	}

	if !p.Rolling {
		p.Rolling = true
		p.RollImpulseApplied = false
		p.RollTimerArmed = false
		p.RollStartTime = tick.Now
	}
	p.NextRollTime = tick.Now + a.deps.Config.Roll.Cooldown

	a.log.WithField("next", p.NextRollTime).Debug("roll armed")
	return true
}

// ExecuteRoll runs on the fixed step while rolling. The first tick of a
// roll schedules the single reset timer for the roll's start time plus its
// duration, so the roll ends on the first fixed step at or past that point.
func (a *Abilities) ExecuteRoll(tick scheduler.Tick) {
	pp, ok := a.deps.player()
	if !ok || !pp.player.Rolling {
		return
	}
	p := pp.player
	cfg := a.deps.Config.Roll

	if !p.RollTimerArmed {
		entry := pp.entry
		a.deps.Timers.Schedule(entry.Entity(), p.RollStartTime+cfg.Duration, func() {
			if !entry.Valid() {
				return
			}
			rp := components.Player.Get(entry)
			rp.Rolling = false
			rp.RollImpulseApplied = false
			rp.RollTimerArmed = false
		})
		p.RollTimerArmed = true
	}

	if cfg.ImpulseMode == config.RollImpulseOnce && p.RollImpulseApplied {
		return
	}

	pp.body.Stop()
	dir := pp.facing()
	pp.body.AddImpulse(dmath.Vec2{X: dir.X * cfg.Impulse, Y: dir.Y * cfg.Impulse})
	pp.sink.SetTrigger(animation.TriggerAttackSwing)
	p.RollImpulseApplied = true
}

// Attack fires the swing trigger on the rising edge. A positive cooldown
// drops presses that come too soon.
func (a *Abilities) Attack(attack input.ActionState, tick scheduler.Tick) bool {
	if !attack.JustPressed {
		return false
	}
	pp, ok := a.deps.player()
	if !ok {
		return false
	}
	if cd := a.deps.Config.Attack.Cooldown; cd > 0 {
		if tick.Now < pp.player.NextAttackTime {
			return false
		}
		pp.player.NextAttackTime = tick.Now + cd
	}
	pp.sink.SetTrigger(animation.TriggerAttackSwing)
	return true
}
