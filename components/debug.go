package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type DebugRay struct {
	From, To dmath.Vec2
	Hit      bool
}

type DebugCircle struct {
	Center dmath.Vec2
	Radius float64
	Hit    bool
}

// DebugData collects the probes the controller cast this frame.
type DebugData struct {
	Enabled bool
	Rays    []DebugRay
	Circles []DebugCircle
}

func (d *DebugData) Reset() {
	d.Rays = d.Rays[:0]
	d.Circles = d.Circles[:0]
}

var Debug = donburi.NewComponentType[DebugData]()
