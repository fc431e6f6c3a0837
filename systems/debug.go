package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func debugOf(w donburi.World) (*components.DebugData, bool) {
	e, ok := components.Debug.First(w)
	if !ok {
		return nil, false
	}
	d := components.Debug.Get(e)
	return d, d.Enabled
}

func recordRay(w donburi.World, from, to dmath.Vec2, hit bool) {
	if d, ok := debugOf(w); ok {
		d.Rays = append(d.Rays, components.DebugRay{From: from, To: to, Hit: hit})
	}
}

func recordCircle(w donburi.World, center dmath.Vec2, radius float64, hit bool) {
	if d, ok := debugOf(w); ok {
		d.Circles = append(d.Circles, components.DebugCircle{Center: center, Radius: radius, Hit: hit})
	}
}

// UpdateDebug toggles the overlay and clears last frame's probes.
func UpdateDebug(w donburi.World, in *input.State) {
	e, ok := components.Debug.First(w)
	if !ok {
		return
	}
	d := components.Debug.Get(e)
	if in.Action(config.ActionToggleDebug).JustPressed {
		d.Enabled = !d.Enabled
	}
	d.Reset()
}
