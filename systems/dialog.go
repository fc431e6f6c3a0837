package systems

import (
	"time"

	"github.com/automoto/hollowvale/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SubscribeDialogBox shows NPC lines in the dialog box and fades it out
// once a conversation ends.
func SubscribeDialogBox(w donburi.World, fade time.Duration) {
	DialogEvents.Subscribe(w, func(w donburi.World, ev DialogEvent) {
		e, ok := components.DialogBox.First(w)
		if !ok {
			return
		}
		box := components.DialogBox.Get(e)

		switch ev.Emission.Kind {
		case components.EmitLine, components.EmitExhaustedLine:
			box.Speaker = ev.Name
			box.Text = ev.Emission.Text
			box.Alpha = 1
			box.Visible = true
			box.Fade = nil
		case components.EmitFinished, components.EmitNone:
			if box.Visible && box.Fade == nil {
				box.Fade = gween.New(box.Alpha, 0, float32(fade.Seconds()), ease.Linear)
			}
		}
	})
}

// UpdateDialogBox advances the fade.
func UpdateDialogBox(w donburi.World, dt time.Duration) {
	e, ok := components.DialogBox.First(w)
	if !ok {
		return
	}
	box := components.DialogBox.Get(e)
	if box.Fade == nil {
		return
	}
	alpha, done := box.Fade.Update(float32(dt.Seconds()))
	box.Alpha = alpha
	if done {
		box.Fade = nil
		box.Visible = false
		box.Text = ""
		box.Speaker = ""
	}
}
