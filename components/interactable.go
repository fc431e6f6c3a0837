package components

import "github.com/yohamta/donburi"

// Category says what the player can do with an entity.
type Category int

const (
	CategoryNone Category = iota
	CategoryNPC
	CategoryItem
	CategoryPushable
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryNPC:
		return "npc"
	case CategoryItem:
		return "item"
	case CategoryPushable:
		return "pushable"
	}
	return "unknown"
}

type InteractableData struct {
	Category Category
	Name     string
}

var Interactable = donburi.NewComponentType[InteractableData]()
