package components

import (
	"github.com/automoto/hollowvale/input"
	"github.com/yohamta/donburi"
)

// InputData is the singleton holding this frame's and last frame's actions.
type InputData struct {
	input.State
}

var Input = donburi.NewComponentType[InputData]()
