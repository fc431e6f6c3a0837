package scenes

import (
	"time"

	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/fonts"
	"github.com/automoto/hollowvale/game"
	"github.com/automoto/hollowvale/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs a level session and draws it.
type WorldScene struct {
	ecs     *ecs.ECS
	session *game.Session
}

// NewWorldScene wraps session in an ECS whose single system advances the
// session by one tick of wall time. Fonts must be loaded first.
func NewWorldScene(session *game.Session, cfg *config.Config) *WorldScene {
	ws := &WorldScene{session: session}

	e := ecs.NewECS(session.World)
	e.AddSystem(ws.advance)

	e.AddRenderer(render.LayerWorld, render.DrawWorld)
	e.AddRenderer(render.LayerWorld, render.DrawDebug)
	e.AddRenderer(render.LayerUI, render.Inventory(fonts.Label.Get()))
	e.AddRenderer(render.LayerUI, render.DialogBox(fonts.Dialog.Get(), cfg.Dialog))

	ws.ecs = e
	return ws
}

func (ws *WorldScene) advance(_ *ecs.ECS) {
	ws.session.Advance(time.Second / time.Duration(ebiten.TPS()))
}

func (ws *WorldScene) Update() {
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	ws.ecs.Draw(screen)
}

// Session exposes the running level.
func (ws *WorldScene) Session() *game.Session {
	return ws.session
}
