// Package world holds the read-only state every controller shares and the
// lookup from colliders back to entities.
package world

import (
	"errors"
	"fmt"

	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/physics"
	"github.com/yohamta/donburi"
)

var (
	ErrNoPlayer  = errors.New("world: no valid player entity")
	ErrEmptyMask = errors.New("world: query mask is empty")
)

// Masks are the tag filters for the three controller queries.
type Masks struct {
	Ground physics.Mask
	Wall   physics.Mask
	Object physics.Mask
}

// Shared is built once at startup and never mutated.
type Shared struct {
	player *donburi.Entry
	masks  Masks
}

func NewShared(player *donburi.Entry, masks Masks) (*Shared, error) {
	if player == nil || !player.Valid() {
		return nil, ErrNoPlayer
	}
	if !player.HasComponent(components.Player) {
		return nil, fmt.Errorf("%w: entity %v has no player component", ErrNoPlayer, player.Entity())
	}
	switch {
	case len(masks.Ground) == 0:
		return nil, fmt.Errorf("%w: ground", ErrEmptyMask)
	case len(masks.Wall) == 0:
		return nil, fmt.Errorf("%w: wall", ErrEmptyMask)
	case len(masks.Object) == 0:
		return nil, fmt.Errorf("%w: object", ErrEmptyMask)
	}
	return &Shared{
		player: player,
		masks: Masks{
			Ground: append(physics.Mask(nil), masks.Ground...),
			Wall:   append(physics.Mask(nil), masks.Wall...),
			Object: append(physics.Mask(nil), masks.Object...),
		},
	}, nil
}

func (s *Shared) Player() *donburi.Entry { return s.player }

// The returned masks must not be modified.
func (s *Shared) GroundMask() physics.Mask { return s.masks.Ground }
func (s *Shared) WallMask() physics.Mask   { return s.masks.Wall }
func (s *Shared) ObjectMask() physics.Mask { return s.masks.Object }
