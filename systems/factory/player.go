package factory

import (
	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/archetypes"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/tags"
	"github.com/automoto/hollowvale/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player and its inventory container.
func CreatePlayer(w donburi.World, reg *world.Registry, cfg *config.Config, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	addObject(w, reg, player, obj)

	components.RigidBody.SetValue(player, components.RigidBodyData{
		Mass:         cfg.Player.Mass,
		GravityScale: cfg.Player.GravityScale,
		Constraints:  components.FreezeRotation,
	})
	components.Transform.SetValue(player, components.TransformData{ScaleX: 1, ScaleY: 1})
	components.Animator.SetValue(player, components.AnimatorData{
		Animator: animation.NewAnimator(animation.DefaultClips()),
	})
	components.Contacts.SetValue(player, components.ContactsData{
		Current: map[donburi.Entity]*donburi.Entry{},
	})
	components.Player.SetValue(player, components.PlayerData{
		FacingRight: true,
		JumpBudget:  components.MaxJumpBudget,
		Inventory:   CreateInventory(w, player),
	})

	return player
}

func CreateInventory(w donburi.World, owner *donburi.Entry) *donburi.Entry {
	inv := archetypes.Inventory.Spawn(w)
	components.Inventory.SetValue(inv, components.InventoryData{Owner: owner})
	return inv
}
