// Package device polls ebiten keyboards and gamepads into input frames.
package device

import (
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings mirrors the classic layout: arrows/WASD to move, space to
// jump, E to talk or pick up, F to push/pull, 1 to attack, 2 to roll.
func DefaultBindings() map[config.ActionID]Binding {
	return map[config.ActionID]Binding{
		config.ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		config.ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		config.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		config.ActionInteract: {
			Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyEnter},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		config.ActionPushPull: {
			Keys:                   []ebiten.Key{ebiten.KeyF, ebiten.KeyShiftLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
		},
		config.ActionAttack: {
			Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyJ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		config.ActionRoll: {
			Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyK},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		config.ActionToggleDebug: {
			Keys: []ebiten.Key{ebiten.KeyF3},
		},
	}
}

// Source reads every connected device each Poll.
type Source struct {
	bindings map[config.ActionID]Binding
	deadzone float64

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewSource(bindings map[config.ActionID]Binding, deadzone float64) *Source {
	return &Source{bindings: bindings, deadzone: deadzone}
}

// Poll implements input.Source.
func (s *Source) Poll() input.Frame {
	var f input.Frame

	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	for actionID, binding := range s.bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				f.Pressed[actionID] = true
			}
		}
		for _, gpID := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					f.Pressed[actionID] = true
				}
			}
		}
	}

	// Digital axis from the move actions, analog stick wins when outside the deadzone
	if f.Pressed[config.ActionMoveRight] {
		f.Axis++
	}
	if f.Pressed[config.ActionMoveLeft] {
		f.Axis--
	}
	if stick := s.analogAxis(); stick != 0 {
		f.Axis = stick
	}

	return f
}

// analogAxis reads the left stick horizontal of the first gamepad past the deadzone.
func (s *Source) analogAxis() float64 {
	for _, gpID := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -s.deadzone || h > s.deadzone {
			return h
		}
	}
	return 0
}
