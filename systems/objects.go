package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/automoto/hollowvale/world"
	"github.com/yohamta/donburi"
)

// DestroyEntity removes an entity and everything that refers to it: its
// pending timers, its collider and its registry entry.
func DestroyEntity(w donburi.World, e *donburi.Entry, timers *scheduler.TimerQueue, registry *world.Registry) {
	if e == nil || !e.Valid() {
		return
	}
	timers.CancelOwner(e.Entity())

	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			if !obj.Disabled {
				if space, ok := spaceOf(w); ok {
					space.Remove(obj.Object)
				}
			}
			registry.Unregister(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// UpdateAnimators advances every animator by one tick.
func UpdateAnimators(w donburi.World) {
	for e := range components.Animator.Iter(w) {
		if a := components.Animator.Get(e); a.Animator != nil {
			a.Update()
		}
	}
}
