package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/automoto/hollowvale/scheduler"
	"github.com/yohamta/donburi"
)

// PlayerController wires the player's systems into the two update phases.
type PlayerController struct {
	Locomotion  *Locomotion
	Abilities   *Abilities
	Interaction *Interaction

	world donburi.World
}

// NewPlayerController builds the controller and subscribes it to contact
// events in w.
func NewPlayerController(w donburi.World, deps Deps) *PlayerController {
	c := &PlayerController{
		Locomotion:  NewLocomotion(deps),
		Abilities:   NewAbilities(deps),
		Interaction: NewInteraction(deps),
		world:       w,
	}
	ContactEvents.Subscribe(w, c.Interaction.OnContact)
	return c
}

// VariableTick handles everything that must see every input edge.
func (c *PlayerController) VariableTick(tick scheduler.Tick) {
	in, ok := inputOf(c.world)
	if !ok {
		return
	}
	c.Locomotion.Jump(in.Action(config.ActionJump))
	c.Interaction.Resolve(c.world, in.Action(config.ActionInteract))
	c.Interaction.PushPull(in.Action(config.ActionPushPull))
	c.Abilities.Attack(in.Action(config.ActionAttack), tick)
	c.Abilities.ArmRoll(in.Action(config.ActionRoll), tick)
}

// FixedTick runs the physics-rate part of the controller.
func (c *PlayerController) FixedTick(tick scheduler.Tick) {
	c.Locomotion.RefreshGrounded(c.world)
	c.Locomotion.RefreshWallJump(c.world)
	if in, ok := inputOf(c.world); ok {
		c.Locomotion.Move(in.Axis())
	}
	c.Abilities.ExecuteRoll(tick)
}

func inputOf(w donburi.World) (*input.State, bool) {
	e, ok := components.Input.First(w)
	if !ok {
		return nil, false
	}
	return &components.Input.Get(e).State, true
}
