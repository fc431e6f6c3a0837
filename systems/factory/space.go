package factory

import (
	"github.com/automoto/hollowvale/archetypes"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addObject links the collider to its entity and puts it in the space.
func addObject(w donburi.World, reg *world.Registry, e *donburi.Entry, obj *resolv.Object) {
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	reg.Register(obj, e)

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
