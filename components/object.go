package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
	// Disabled colliders have been removed from the space.
	Disabled bool
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space.
var Space = donburi.NewComponentType[resolv.Space]()
