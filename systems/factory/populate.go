package factory

import (
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/level"
	"github.com/automoto/hollowvale/world"
	"github.com/yohamta/donburi"
)

// Populate builds the collision space and every entity of a level. It
// returns the player.
func Populate(w donburi.World, reg *world.Registry, cfg *config.Config, lvl *level.Level) *donburi.Entry {
	CreateSpace(w, lvl.Width, lvl.Height, cfg.Physics.CellSize)
	CreateLevel(w, lvl)

	for _, r := range lvl.Ground {
		CreateGround(w, reg, r)
	}
	for _, r := range lvl.Walls {
		CreateWall(w, reg, r)
	}
	for _, n := range lvl.NPCs {
		CreateNPC(w, reg, n)
	}
	for _, it := range lvl.Items {
		CreateItem(w, reg, it)
	}
	for _, r := range lvl.Pushables {
		CreatePushable(w, reg, cfg.Physics, r)
	}

	player := CreatePlayer(w, reg, cfg, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	CreateInput(w)
	CreateCamera(w, cfg.Camera.Offset)
	CreateDialogBox(w)
	CreateDebug(w, cfg.UI.ShowDebug)

	return player
}
