// Package render draws the level with flat shapes. Everything here reads
// components and never changes game state.
package render

import (
	"image/color"

	"github.com/automoto/hollowvale/animation"
	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerUI
)

var (
	Sky      = color.RGBA{24, 28, 40, 255}
	Ground   = color.RGBA{86, 70, 52, 255}
	Wall     = color.RGBA{64, 64, 72, 255}
	Crate    = color.RGBA{150, 110, 60, 255}
	NPC      = color.RGBA{90, 160, 200, 255}
	Item     = color.RGBA{230, 200, 80, 255}
	Player   = color.RGBA{220, 220, 235, 255}
	Swinging = color.RGBA{255, 140, 90, 255}
	Rolling  = color.RGBA{170, 120, 230, 255}
)

// padding keeps shapes from popping at the screen edges.
const padding = 64.0

// view maps world coordinates to the screen for one frame.
type view struct {
	dx, dy                 float64
	minX, minY, maxX, maxY float64
}

func newView(camera math.Vec2, width, height int) view {
	w, h := float64(width), float64(height)
	return view{
		dx:   w/2 - camera.X,
		dy:   h/2 - camera.Y,
		minX: camera.X - w/2 - padding,
		maxX: camera.X + w/2 + padding,
		minY: camera.Y - h/2 - padding,
		maxY: camera.Y + h/2 + padding,
	}
}

func viewOf(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return newView(camera.Position, screen.Bounds().Dx(), screen.Bounds().Dy()), true
}

func (v view) visible(o *resolv.Object) bool {
	return !(o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY)
}

func (v view) point(p math.Vec2) (float32, float32) {
	return float32(p.X + v.dx), float32(p.Y + v.dy)
}

func (v view) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	if !v.visible(o) {
		return
	}
	vector.FillRect(screen, float32(o.X+v.dx), float32(o.Y+v.dy), float32(o.W), float32(o.H), c, false)
}

// DrawWorld paints the level geometry and every live body.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(Sky)
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	drawTagged(screen, v, e.World, tags.Ground, Ground)
	drawTagged(screen, v, e.World, tags.Wall, Wall)
	drawTagged(screen, v, e.World, tags.Pushable, Crate)

	tags.NPC.Each(e.World, func(npc *donburi.Entry) {
		o := components.Object.Get(npc)
		v.fill(screen, o.Object, NPC)
		drawFacing(screen, v, npc)
	})

	tags.Item.Each(e.World, func(item *donburi.Entry) {
		o := components.Object.Get(item)
		if o.Disabled || !components.Active.Get(item).Active {
			return
		}
		v.fill(screen, o.Object, Item)
	})

	tags.Player.Each(e.World, func(player *donburi.Entry) {
		v.fill(screen, components.Object.Get(player).Object, playerColor(player))
		drawFacing(screen, v, player)
	})
}

func drawTagged(screen *ebiten.Image, v view, w donburi.World, tag donburi.IComponentType, c color.Color) {
	query.NewQuery(filter.Contains(tag, components.Object)).Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.Disabled {
			return
		}
		v.fill(screen, o.Object, c)
	})
}

// playerColor reflects what the player is doing.
func playerColor(e *donburi.Entry) color.Color {
	if components.Player.Get(e).Rolling {
		return Rolling
	}
	if a := components.Animator.Get(e).Animator; a != nil && a.Current() == animation.ClipAttack {
		return Swinging
	}
	return Player
}

// drawFacing marks the side of the body the entity looks towards.
func drawFacing(screen *ebiten.Image, v view, e *donburi.Entry) {
	if !e.HasComponent(components.Transform) {
		return
	}
	o := components.Object.Get(e).Object
	if !v.visible(o) {
		return
	}
	x := o.X + o.W - 3
	if components.Transform.Get(e).ScaleX < 0 {
		x = o.X + 1
	}
	vector.FillRect(screen, float32(x+v.dx), float32(o.Y+6+v.dy), 2, 4, Sky, false)
}
