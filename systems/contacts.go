package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/world"
	"github.com/yohamta/donburi"
)

// UpdateContacts diffs what each sensing body touches against last step and
// publishes enter and exit events.
func UpdateContacts(w donburi.World, deps Deps) {
	margin := deps.Config.Interaction.ContactMargin
	mask := deps.Shared.ObjectMask()

	components.Contacts.Each(w, func(self *donburi.Entry) {
		contacts := components.Contacts.Get(self)
		if contacts.Current == nil {
			contacts.Current = map[donburi.Entity]*donburi.Entry{}
		}
		obj := components.Object.Get(self)

		now := map[donburi.Entity]*donburi.Entry{}
		for _, other := range deps.Contacts.Touching(obj.Object, margin, mask) {
			if e, ok := deps.Registry.Lookup(other); ok && e != self {
				now[e.Entity()] = e
			}
		}

		for id, e := range contacts.Current {
			if _, still := now[id]; still {
				continue
			}
			cat := components.CategoryNone
			if e.Valid() {
				cat = world.CategoryOf(e)
			}
			ContactEvents.Publish(w, ContactEvent{Kind: ContactExit, Self: self, Other: e, Category: cat})
		}
		for id, e := range now {
			if _, had := contacts.Current[id]; had {
				continue
			}
			ContactEvents.Publish(w, ContactEvent{Kind: ContactEnter, Self: self, Other: e, Category: world.CategoryOf(e)})
		}
		contacts.Current = now
	})
}
