package components

import (
	"github.com/automoto/hollowvale/animation"
	"github.com/yohamta/donburi"
)

type AnimatorData struct {
	*animation.Animator
}

var Animator = donburi.NewComponentType[AnimatorData]()
