package factory

import (
	"github.com/automoto/hollowvale/archetypes"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera captures the camera's offset from the player at startup.
func CreateCamera(w donburi.World, offset config.Offset) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Offset: math.Vec2{X: offset.X, Y: offset.Y},
	})
	return camera
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateDialogBox(w donburi.World) *donburi.Entry {
	return archetypes.DialogBox.Spawn(w)
}

func CreateDebug(w donburi.World, enabled bool) *donburi.Entry {
	debug := archetypes.Debug.Spawn(w)
	components.Debug.SetValue(debug, components.DebugData{Enabled: enabled})
	return debug
}

func CreateLevel(w donburi.World, lvl *level.Level) *donburi.Entry {
	e := archetypes.Level.Spawn(w)
	components.Level.SetValue(e, components.LevelData{Level: lvl})
	return e
}
