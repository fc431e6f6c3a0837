package archetypes

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.RigidBody,
		components.Transform,
		components.Animator,
		components.Contacts,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Object,
		components.Transform,
		components.Interactable,
		components.Dialog,
		components.Active,
	)
	Item = newArchetype(
		tags.Item,
		components.Object,
		components.Interactable,
		components.Item,
		components.Active,
	)
	Pushable = newArchetype(
		tags.Pushable,
		components.Object,
		components.RigidBody,
		components.Interactable,
		components.FixedJoint,
		components.Active,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Inventory = newArchetype(
		components.Inventory,
	)
	Input = newArchetype(
		components.Input,
	)
	Camera = newArchetype(
		components.Camera,
	)
	DialogBox = newArchetype(
		components.DialogBox,
	)
	Debug = newArchetype(
		components.Debug,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
