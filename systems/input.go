package systems

import (
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/input"
	"github.com/yohamta/donburi"
)

// UpdateInput samples the source once for this frame.
func UpdateInput(w donburi.World, src input.Source) {
	e, ok := components.Input.First(w)
	if !ok {
		return
	}
	components.Input.Get(e).Push(src.Poll())
}
