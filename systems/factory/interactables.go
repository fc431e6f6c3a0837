package factory

import (
	"github.com/automoto/hollowvale/archetypes"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/level"
	"github.com/automoto/hollowvale/tags"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateNPC(w donburi.World, reg *world.Registry, spawn level.NPCSpawn) *donburi.Entry {
	npc := archetypes.NPC.Spawn(w)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvNPC)
	addObject(w, reg, npc, obj)

	components.Transform.SetValue(npc, components.TransformData{ScaleX: 1, ScaleY: 1})
	components.Interactable.SetValue(npc, components.InteractableData{
		Category: components.CategoryNPC,
		Name:     spawn.Name,
	})
	components.Dialog.SetValue(npc, components.NewDialog(spawn.Lines, spawn.Exhausted))
	components.Active.SetValue(npc, components.ActiveData{Active: true})

	return npc
}

func CreateItem(w donburi.World, reg *world.Registry, spawn level.ItemSpawn) *donburi.Entry {
	item := archetypes.Item.Spawn(w)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvItem)
	addObject(w, reg, item, obj)

	components.Interactable.SetValue(item, components.InteractableData{
		Category: components.CategoryItem,
		Name:     spawn.Name,
	})
	components.Item.SetValue(item, components.ItemData{Name: spawn.Name})
	components.Active.SetValue(item, components.ActiveData{Active: true})

	return item
}

// CreatePushable spawns a crate. It is solid and stands on like ground, and
// its horizontal position stays locked until the player grabs it.
func CreatePushable(w donburi.World, reg *world.Registry, phys config.PhysicsConfig, r level.Rect) *donburi.Entry {
	crate := archetypes.Pushable.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvPushable)
	addObject(w, reg, crate, obj)

	components.RigidBody.SetValue(crate, components.RigidBodyData{
		Mass:         phys.PushableMass,
		GravityScale: 1,
		Constraints:  components.FreezePositionX | components.FreezeRotation,
	})
	components.Interactable.SetValue(crate, components.InteractableData{
		Category: components.CategoryPushable,
		Name:     "crate",
	})
	components.Active.SetValue(crate, components.ActiveData{Active: true})

	return crate
}
