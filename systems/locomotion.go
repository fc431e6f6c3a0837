package systems

import (
	"math"

	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/physics"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Locomotion owns the player's run, jump and facing.
type Locomotion struct {
	deps Deps
	log  logrus.FieldLogger
}

func NewLocomotion(deps Deps) *Locomotion {
	return &Locomotion{deps: deps, log: deps.Log.WithField("system", "locomotion")}
}

// Move sets horizontal velocity from the axis. It does nothing while the
// player is rolling or locked in a conversation.
func (l *Locomotion) Move(axis float64) {
	pp, ok := l.deps.player()
	if !ok || pp.player.Rolling || pp.player.InteractingWithObject {
		return
	}

	pp.body.Velocity.X = axis * l.deps.Config.Player.MoveSpeed
	pp.sink.SetFloat(animation.ParamLocomotionSpeed, math.Abs(axis))

	if pp.player.MovingObject {
		return
	}
	if (axis > 0 && !pp.player.FacingRight) || (axis < 0 && pp.player.FacingRight) {
		l.Flip(pp.entry)
	}
}

// Jump fires on the rising edge when the player is grounded or against a
// wall, has budget left and is not rolling. It reports whether it jumped.
func (l *Locomotion) Jump(jump input.ActionState) bool {
	if !jump.JustPressed {
		return false
	}
	pp, ok := l.deps.player()
	if !ok {
		return false
	}
	p := pp.player
	if !(p.Grounded || p.WallJumpPossible) || p.JumpBudget <= 1 || p.Rolling {
		return false
	}

	// zero first so every jump has the same height
	pp.body.Stop()
	pp.body.AddImpulse(dmath.Vec2{X: 0, Y: -l.deps.Config.Player.JumpImpulse})
	p.JumpBudget--

	l.log.WithFields(logrus.Fields{"budget": p.JumpBudget, "wall": !p.Grounded}).Debug("jump")
	return true
}

// RefreshGrounded probes under the feet. The jump budget is restored only
// on the frame the player lands.
func (l *Locomotion) RefreshGrounded(w donburi.World) {
	pp, ok := l.deps.player()
	if !ok {
		return
	}
	cfg := l.deps.Config.Player
	foot := offset(physics.Center(pp.obj), cfg.GroundCheckOffset.X, cfg.GroundCheckOffset.Y)

	grounded := l.deps.Queries.OverlapCircle(foot, cfg.GroundCheckRadius, l.deps.Shared.GroundMask())
	recordCircle(w, foot, cfg.GroundCheckRadius, grounded)

	if grounded && !pp.player.Grounded {
		pp.player.JumpBudget = components.MaxJumpBudget
	}
	pp.player.Grounded = grounded
}

// RefreshWallJump casts a short ray along the facing direction.
func (l *Locomotion) RefreshWallJump(w donburi.World) {
	pp, ok := l.deps.player()
	if !ok {
		return
	}
	origin := physics.Center(pp.obj)
	dir := pp.facing()
	dist := l.deps.Config.Player.WallCheckDistance

	_, hit := l.deps.Queries.Raycast(origin, dir, dist, l.deps.Shared.WallMask())
	recordRay(w, origin, offset(origin, dir.X*dist, dir.Y*dist), hit)
	pp.player.WallJumpPossible = hit
}

// Flip turns the player around and mirrors the sprite.
func (l *Locomotion) Flip(e *donburi.Entry) {
	p := components.Player.Get(e)
	p.FacingRight = !p.FacingRight
	if e.HasComponent(components.Transform) {
		tr := components.Transform.Get(e)
		tr.ScaleX = -tr.ScaleX
	}
}
