package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Name string
	// Holder is the inventory the item was moved into, nil while in the world.
	Holder *donburi.Entry
}

var Item = donburi.NewComponentType[ItemData]()

// ActiveData marks whether an entity takes part in the world. Inactive
// entities are skipped by queries and rendering but not destroyed.
type ActiveData struct {
	Active bool
}

var Active = donburi.NewComponentType[ActiveData]()

type InventoryData struct {
	Owner *donburi.Entry
	Items []*donburi.Entry
}

func (inv *InventoryData) Contains(item *donburi.Entry) bool {
	for _, e := range inv.Items {
		if e == item {
			return true
		}
	}
	return false
}

var Inventory = donburi.NewComponentType[InventoryData]()
