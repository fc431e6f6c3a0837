package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DialogBoxData is the on-screen text box. Alpha is driven by Fade.
type DialogBoxData struct {
	Speaker string
	Text    string
	Alpha   float32
	Visible bool
	Fade    *gween.Tween
}

var DialogBox = donburi.NewComponentType[DialogBoxData]()
