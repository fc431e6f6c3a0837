package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Constraints freeze parts of a rigid body.
type Constraints uint8

const (
	FreezePositionX Constraints = 1 << iota
	FreezePositionY
	FreezeRotation

	FreezeNone Constraints = 0
	FreezeAll              = FreezePositionX | FreezePositionY | FreezeRotation
)

func (c Constraints) Has(f Constraints) bool {
	return c&f == f
}

// RigidBodyData is a velocity-driven body. Velocity is in pixels per second.
type RigidBodyData struct {
	Velocity     dmath.Vec2
	Mass         float64
	GravityScale float64
	Constraints  Constraints
}

// AddImpulse changes velocity by impulse / mass.
func (rb *RigidBodyData) AddImpulse(impulse dmath.Vec2) {
	mass := rb.Mass
	if mass <= 0 {
		mass = 1
	}
	rb.Velocity.X += impulse.X / mass
	rb.Velocity.Y += impulse.Y / mass
}

func (rb *RigidBodyData) Stop() {
	rb.Velocity = dmath.Vec2{}
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

// TransformData carries the visual scale. A negative ScaleX mirrors the sprite.
type TransformData struct {
	ScaleX, ScaleY float64
}

var Transform = donburi.NewComponentType[TransformData]()
