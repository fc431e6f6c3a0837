package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// FixedJointData pins a body to another at a fixed offset.
type FixedJointData struct {
	Enabled   bool
	Connected *donburi.Entry
	// Offset from the connected body's position, captured on attach.
	Offset dmath.Vec2
}

var FixedJoint = donburi.NewComponentType[FixedJointData]()
