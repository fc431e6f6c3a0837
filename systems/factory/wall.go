package factory

import (
	"github.com/automoto/hollowvale/archetypes"
	"github.com/automoto/hollowvale/level"
	"github.com/automoto/hollowvale/tags"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, reg *world.Registry, r level.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	addObject(w, reg, wall, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvWall))
	return wall
}

func CreateGround(w donburi.World, reg *world.Registry, r level.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)
	addObject(w, reg, ground, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvGround))
	return ground
}
