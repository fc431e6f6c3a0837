package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type ContactKind int

const (
	ContactEnter ContactKind = iota
	ContactExit
)

// ContactEvent reports a body starting or stopping touching another.
// Other may no longer be valid on exit.
type ContactEvent struct {
	Kind     ContactKind
	Self     *donburi.Entry
	Other    *donburi.Entry
	Category components.Category
}

var ContactEvents = events.NewEventType[ContactEvent]()

// DialogEvent carries what an NPC said.
type DialogEvent struct {
	Speaker  *donburi.Entry
	Name     string
	Emission components.DialogEmission
}

var DialogEvents = events.NewEventType[DialogEvent]()

type ItemCollectedEvent struct {
	Item      *donburi.Entry
	Inventory *donburi.Entry
	Name      string
}

var ItemCollectedEvents = events.NewEventType[ItemCollectedEvent]()

// DispatchEvents delivers every queued event to its subscribers.
func DispatchEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}
