package systems

import (
	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/physics"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/automoto/hollowvale/world"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpatialQuery is the probe interface the controllers cast against.
type SpatialQuery interface {
	OverlapCircle(center dmath.Vec2, radius float64, mask physics.Mask) bool
	Raycast(origin, dir dmath.Vec2, maxDist float64, mask physics.Mask) (physics.Hit, bool)
}

// ContactQuery lists the colliders touching a body.
type ContactQuery interface {
	Touching(obj *resolv.Object, margin float64, mask physics.Mask) []*resolv.Object
}

// Deps is everything a controller needs from the outside. It is built once
// by the scene.
type Deps struct {
	Shared   *world.Shared
	Registry *world.Registry
	Queries  SpatialQuery
	Contacts ContactQuery
	Timers   *scheduler.TimerQueue
	Config   *config.Config
	Log      logrus.FieldLogger
}

// playerParts bundles the player's components for one update.
type playerParts struct {
	entry  *donburi.Entry
	player *components.PlayerData
	body   *components.RigidBodyData
	obj    *resolv.Object
	sink   animation.Sink
}

func (d Deps) player() (playerParts, bool) {
	e := d.Shared.Player()
	if !e.Valid() {
		return playerParts{}, false
	}
	return playerParts{
		entry:  e,
		player: components.Player.Get(e),
		body:   components.RigidBody.Get(e),
		obj:    components.Object.Get(e).Object,
		sink:   sinkOf(e),
	}, true
}

// facing returns the unit vector the player looks along.
func (pp playerParts) facing() dmath.Vec2 {
	if pp.player.FacingRight {
		return dmath.Vec2{X: 1, Y: 0}
	}
	return dmath.Vec2{X: -1, Y: 0}
}

type nopSink struct{}

func (nopSink) SetTrigger(string)        {}
func (nopSink) SetFloat(string, float64) {}

func sinkOf(e *donburi.Entry) animation.Sink {
	if e.HasComponent(components.Animator) {
		if a := components.Animator.Get(e); a.Animator != nil {
			return a.Animator
		}
	}
	return nopSink{}
}

func spaceOf(w donburi.World) (*resolv.Space, bool) {
	e, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	return components.Space.Get(e), true
}

func offset(v dmath.Vec2, dx, dy float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X + dx, Y: v.Y + dy}
}
