package systems

import (
	"math"
	"time"

	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every rigid body by dt. Free bodies move first,
// then jointed bodies follow whatever they are connected to.
func UpdatePhysics(w donburi.World, cfg config.PhysicsConfig, dt time.Duration) {
	seconds := dt.Seconds()

	// A body never collides with something jointed to it.
	ignoreFor := map[donburi.Entity]map[*resolv.Object]bool{}
	var jointed []*donburi.Entry
	components.FixedJoint.Each(w, func(e *donburi.Entry) {
		j := components.FixedJoint.Get(e)
		if !j.Enabled || !world.Alive(j.Connected) || !world.Alive(e) {
			return
		}
		owner := j.Connected.Entity()
		if ignoreFor[owner] == nil {
			ignoreFor[owner] = map[*resolv.Object]bool{}
		}
		ignoreFor[owner][components.Object.Get(e).Object] = true
		jointed = append(jointed, e)
	})

	isJointed := make(map[donburi.Entity]bool, len(jointed))
	for _, e := range jointed {
		isJointed[e.Entity()] = true
	}

	components.RigidBody.Each(w, func(e *donburi.Entry) {
		if isJointed[e.Entity()] || !world.Alive(e) {
			return
		}
		obj := components.Object.Get(e)
		if obj.Disabled {
			return
		}
		body := components.RigidBody.Get(e)
		integrate(body, cfg, seconds)
		step(body, obj.Object, seconds, ignoreFor[e.Entity()])
	})

	for _, e := range jointed {
		follow(e, cfg, seconds)
	}
}

// integrate applies gravity and the body's constraints to its velocity.
func integrate(body *components.RigidBodyData, cfg config.PhysicsConfig, seconds float64) {
	if body.Constraints.Has(components.FreezePositionX) {
		body.Velocity.X = 0
	}
	if body.Constraints.Has(components.FreezePositionY) {
		body.Velocity.Y = 0
		return
	}
	body.Velocity.Y += cfg.Gravity * body.GravityScale * seconds
	if cfg.MaxFallSpeed > 0 && body.Velocity.Y > cfg.MaxFallSpeed {
		body.Velocity.Y = cfg.MaxFallSpeed
	}
}

// step moves the collider by the body's velocity and stops it on solids.
func step(body *components.RigidBodyData, obj *resolv.Object, seconds float64, ignore map[*resolv.Object]bool) {
	if _, blocked := resolveHorizontal(obj, body.Velocity.X*seconds, ignore); blocked {
		body.Velocity.X = 0
	}
	if _, blocked := resolveVertical(obj, body.Velocity.Y*seconds, ignore); blocked {
		body.Velocity.Y = 0
	}
	obj.Update()
}

// follow keeps a jointed body at its offset from the connected body. When
// the jointed body is blocked, the connected body is held back with it.
func follow(e *donburi.Entry, cfg config.PhysicsConfig, seconds float64) {
	joint := components.FixedJoint.Get(e)
	obj := components.Object.Get(e).Object
	body := components.RigidBody.Get(e)
	anchor := components.Object.Get(joint.Connected).Object

	want := anchor.X + joint.Offset.X - obj.X
	got, _ := resolveHorizontal(obj, want, nil)
	if short := want - got; math.Abs(short) > epsilon {
		anchor.X -= short
		anchor.Update()
		if joint.Connected.HasComponent(components.RigidBody) {
			components.RigidBody.Get(joint.Connected).Velocity.X = 0
		}
	}
	if seconds > 0 {
		body.Velocity.X = got / seconds
	}

	// vertical motion stays free so a dragged crate can still fall
	integrate(body, cfg, seconds)
	if _, blocked := resolveVertical(obj, body.Velocity.Y*seconds, nil); blocked {
		body.Velocity.Y = 0
	}
	obj.Update()
}
