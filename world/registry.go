package world

import (
	"github.com/automoto/hollowvale/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Speaker is anything the player can hold a conversation with.
type Speaker interface {
	Talk() components.DialogEmission
	IsTalking() bool
}

// Target is a non-owning reference to the entity behind a collider.
type Target struct {
	Category components.Category
	Entry    *donburi.Entry
}

// Registry maps colliders to the entities that own them.
type Registry struct {
	byObject map[*resolv.Object]*donburi.Entry
}

func NewRegistry() *Registry {
	return &Registry{byObject: make(map[*resolv.Object]*donburi.Entry)}
}

func (r *Registry) Register(obj *resolv.Object, e *donburi.Entry) {
	r.byObject[obj] = e
}

func (r *Registry) Unregister(obj *resolv.Object) {
	delete(r.byObject, obj)
}

func (r *Registry) Len() int { return len(r.byObject) }

// Lookup returns the live entity behind obj.
func (r *Registry) Lookup(obj *resolv.Object) (*donburi.Entry, bool) {
	e, ok := r.byObject[obj]
	if !ok || !Alive(e) {
		return nil, false
	}
	return e, true
}

// Resolve classifies the entity behind obj. Unknown, destroyed or inactive
// entities resolve to CategoryNone.
func (r *Registry) Resolve(obj *resolv.Object) Target {
	e, ok := r.Lookup(obj)
	if !ok {
		return Target{}
	}
	return Target{Category: CategoryOf(e), Entry: e}
}

// Speaker returns the entity's dialog capability.
func (r *Registry) Speaker(e *donburi.Entry) (Speaker, bool) {
	if !Alive(e) || !e.HasComponent(components.Dialog) {
		return nil, false
	}
	return components.Dialog.Get(e), true
}

// CategoryOf reads the interactable category, CategoryNone if absent.
func CategoryOf(e *donburi.Entry) components.Category {
	if !e.HasComponent(components.Interactable) {
		return components.CategoryNone
	}
	return components.Interactable.Get(e).Category
}

// Alive reports whether e still refers to an active entity.
func Alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.Active) {
		return components.Active.Get(e).Active
	}
	return true
}
