package systems

import (
	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/physics"
	"github.com/automoto/hollowvale/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Interaction looks ahead of the player every frame and acts on what it
// finds. Push/pull is driven by contacts rather than the ray.
type Interaction struct {
	deps Deps
	log  logrus.FieldLogger
}

func NewInteraction(deps Deps) *Interaction {
	return &Interaction{deps: deps, log: deps.Log.WithField("system", "interaction")}
}

// Probe casts the interaction ray and classifies the nearest hit.
func (in *Interaction) Probe(w donburi.World) world.Target {
	pp, ok := in.deps.player()
	if !ok {
		return world.Target{}
	}
	origin := physics.Center(pp.obj)
	dir := pp.facing()
	dist := in.deps.Config.Interaction.RayDistance

	hit, found := in.deps.Queries.Raycast(origin, dir, dist, in.deps.Shared.ObjectMask())
	recordRay(w, origin, offset(origin, dir.X*dist, dir.Y*dist), found)
	if !found {
		return world.Target{}
	}
	return in.deps.Registry.Resolve(hit.Object)
}

// Resolve runs the ray and dispatches on the category of the hit.
func (in *Interaction) Resolve(w donburi.World, interact input.ActionState) {
	if pp, ok := in.deps.player(); ok {
		if npc := pp.player.TalkingTo; npc != nil && !world.Alive(npc) {
			in.log.Debug("dropping stale conversation")
			endTalk(pp)
		}
	}

	target := in.Probe(w)

	switch target.Category {
	case components.CategoryNPC:
		if interact.JustPressed {
			in.talk(w, target.Entry)
		}
	case components.CategoryItem:
		if interact.JustPressed {
			in.collect(w, target.Entry)
		}
	case components.CategoryPushable, components.CategoryNone:
		// pushables are handled by PushPull
	default:
		in.log.WithField("category", target.Category).Warn("unhandled interaction category")
	}
}

func (in *Interaction) talk(w donburi.World, npc *donburi.Entry) {
	pp, ok := in.deps.player()
	if !ok {
		return
	}
	speaker, ok := in.deps.Registry.Speaker(npc)
	if !ok {
		in.log.WithField("entity", npc.Entity()).Debug("npc has nothing to say")
		return
	}

	emission := speaker.Talk()
	faceTowards(npc, pp.entry)

	name := ""
	if npc.HasComponent(components.Interactable) {
		name = components.Interactable.Get(npc).Name
	}
	DialogEvents.Publish(w, DialogEvent{Speaker: npc, Name: name, Emission: emission})

	if speaker.IsTalking() {
		pp.body.Stop()
		pp.body.Constraints = components.FreezeAll
		pp.player.InteractingWithObject = true
		pp.player.TalkingTo = npc
		pp.sink.SetFloat(animation.ParamLocomotionSpeed, 0)
	} else {
		endTalk(pp)
	}

	in.log.WithFields(logrus.Fields{
		"npc":     name,
		"talking": speaker.IsTalking(),
	}).Debug("talk")
}

// endTalk gives the player back control.
func endTalk(pp playerParts) {
	pp.body.Constraints = components.FreezeRotation
	pp.player.InteractingWithObject = false
	pp.player.TalkingTo = nil
}

// faceTowards mirrors the NPC so it looks back at the player.
func faceTowards(npc, player *donburi.Entry) {
	if !npc.HasComponent(components.Transform) || !player.HasComponent(components.Transform) {
		return
	}
	components.Transform.Get(npc).ScaleX = -components.Transform.Get(player).ScaleX
}

// collect moves the item into the player's inventory and takes it out of
// the world.
func (in *Interaction) collect(w donburi.World, item *donburi.Entry) {
	pp, ok := in.deps.player()
	if !ok {
		return
	}
	inv := pp.player.Inventory
	if inv == nil || !inv.Valid() {
		in.log.Warn("player has no inventory, item left in place")
		return
	}

	invData := components.Inventory.Get(inv)
	if invData.Contains(item) {
		return
	}
	invData.Items = append(invData.Items, item)

	data := components.Item.Get(item)
	data.Holder = inv

	in.disableCollider(w, item)
	components.Active.Get(item).Active = false

	ItemCollectedEvents.Publish(w, ItemCollectedEvent{Item: item, Inventory: inv, Name: data.Name})
	in.log.WithField("item", data.Name).Info("item collected")
}

func (in *Interaction) disableCollider(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Disabled {
		return
	}
	if space, ok := spaceOf(w); ok {
		space.Remove(obj.Object)
	}
	in.deps.Registry.Unregister(obj.Object)
	obj.Disabled = true
}

// OnContact tracks the pushable the player is touching.
func (in *Interaction) OnContact(_ donburi.World, ev ContactEvent) {
	pp, ok := in.deps.player()
	if !ok || ev.Self != pp.entry {
		return
	}
	switch ev.Kind {
	case ContactEnter:
		if ev.Category == components.CategoryPushable {
			pp.player.Touching = ev.Other
		}
	case ContactExit:
		if pp.player.Touching == ev.Other {
			pp.player.Touching = nil
		}
	}
}

// PushPull attaches the touched pushable while the action is held and
// releases whatever is attached once it is not.
func (in *Interaction) PushPull(pushPull input.ActionState) {
	pp, ok := in.deps.player()
	if !ok {
		return
	}
	p := pp.player

	if p.Touching != nil && !world.Alive(p.Touching) {
		in.log.Debug("dropping stale touching reference")
		p.Touching = nil
	}
	if p.Attached != nil && !world.Alive(p.Attached) {
		in.log.Debug("dropping stale attached reference")
		in.release(pp)
	}

	switch {
	case pushPull.Pressed && p.Attached == nil && p.Touching != nil:
		in.attach(pp, p.Touching)
	case !pushPull.Pressed && (p.Attached != nil || pushPull.JustReleased):
		in.release(pp)
	}
}

func (in *Interaction) attach(pp playerParts, obj *donburi.Entry) {
	joint := components.FixedJoint.Get(obj)
	pos := components.Object.Get(obj)
	joint.Enabled = true
	joint.Connected = pp.entry
	joint.Offset.X = pos.X - pp.obj.X
	joint.Offset.Y = pos.Y - pp.obj.Y

	components.RigidBody.Get(obj).Constraints = components.FreezeRotation

	pp.player.Attached = obj
	pp.player.MovingObject = true
	in.log.WithField("entity", obj.Entity()).Debug("attached")
}

// release always leaves the player free and, when the object still exists,
// its joint cleared and its horizontal position locked.
func (in *Interaction) release(pp playerParts) {
	if obj := pp.player.Attached; obj != nil && obj.Valid() {
		joint := components.FixedJoint.Get(obj)
		joint.Enabled = false
		joint.Connected = nil

		body := components.RigidBody.Get(obj)
		body.Constraints = components.FreezePositionX | components.FreezeRotation
		body.Velocity.X = 0
	}
	pp.player.Attached = nil
	pp.player.MovingObject = false
}
