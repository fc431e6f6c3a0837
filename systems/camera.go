package systems

import (
	"math"

	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/physics"
	"github.com/automoto/hollowvale/world"
	"github.com/yohamta/donburi"
)

// UpdateCamera keeps the camera at its starting offset from the player,
// clamped so the level always fills the screen.
func UpdateCamera(w donburi.World, shared *world.Shared, window config.WindowConfig) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	player := shared.Player()
	if !world.Alive(player) {
		return
	}
	center := physics.Center(components.Object.Get(player).Object)
	targetX := center.X + camera.Offset.X
	targetY := center.Y + camera.Offset.Y

	if levelEntry, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(levelEntry).Level; lvl != nil {
			targetX = clampAxis(targetX, float64(window.Width), float64(lvl.Width))
			targetY = clampAxis(targetY, float64(window.Height), float64(lvl.Height))
		}
	}

	camera.Position.X = targetX
	camera.Position.Y = targetY
}

// clampAxis keeps a camera centre within the level on one axis. A level
// smaller than the screen is centred.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
