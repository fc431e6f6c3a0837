package render

import (
	"image/color"
	"strings"

	"github.com/automoto/hollowvale/components"
	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	probeHit  = color.RGBA{80, 230, 120, 255}
	probeMiss = color.RGBA{230, 80, 80, 255}
	boxFill   = color.RGBA{0, 0, 0, 190}
	textColor = color.RGBA{240, 240, 240, 255}
)

// DrawDebug outlines every collider and the probes cast this frame.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(debugEntry).Enabled {
		return
	}
	debug := components.Debug.Get(debugEntry)
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !v.visible(obj) {
				continue
			}
			vector.StrokeRect(screen, float32(obj.X+v.dx), float32(obj.Y+v.dy), float32(obj.W), float32(obj.H), 1, colliderColor(obj), false)
		}
	}

	for _, ray := range debug.Rays {
		x0, y0 := v.point(ray.From)
		x1, y1 := v.point(ray.To)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, probeColor(ray.Hit), false)
	}
	for _, c := range debug.Circles {
		x, y := v.point(c.Center)
		vector.StrokeCircle(screen, x, y, float32(c.Radius), 1, probeColor(c.Hit), false)
	}
}

func probeColor(hit bool) color.Color {
	if hit {
		return probeHit
	}
	return probeMiss
}

func colliderColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255}
	case obj.HasTags(tags.ResolvPushable):
		return color.RGBA{255, 160, 0, 255}
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255}
	case obj.HasTags(tags.ResolvNPC), obj.HasTags(tags.ResolvItem):
		return color.RGBA{0, 255, 255, 255}
	}
	return color.RGBA{255, 0, 255, 255}
}

// DialogBox returns the renderer for the NPC text box.
func DialogBox(face font.Face, cfg config.DialogConfig) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		boxEntry, ok := components.DialogBox.First(e.World)
		if !ok {
			return
		}
		box := components.DialogBox.Get(boxEntry)
		if !box.Visible || box.Alpha <= 0 {
			return
		}

		line := box.Text
		if box.Speaker != "" {
			line = box.Speaker + ": " + box.Text
		}
		bounds := text.BoundString(face, line) //nolint:staticcheck
		padding := float32(cfg.BoxPadding)
		width := float32(screen.Bounds().Dx())
		boxW := width - 2*float32(cfg.BottomMargin)
		boxH := float32(bounds.Dy()) + padding*2
		boxX := float32(cfg.BottomMargin)
		boxY := float32(screen.Bounds().Dy()) - float32(cfg.BottomMargin) - boxH

		vector.FillRect(screen, boxX, boxY, boxW, boxH, fade(boxFill, box.Alpha), false)
		text.Draw(screen, line, face, int(boxX+padding), int(boxY+padding)-bounds.Min.Y, fade(textColor, box.Alpha)) //nolint:staticcheck
	}
}

// Inventory returns the renderer listing what the player carries.
func Inventory(face font.Face) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		inv := components.Player.Get(playerEntry).Inventory
		if inv == nil || !inv.Valid() {
			return
		}
		line := inventoryLine(components.Inventory.Get(inv))
		if line == "" {
			return
		}
		text.Draw(screen, line, face, 10, 10+face.Metrics().Ascent.Ceil(), textColor) //nolint:staticcheck
	}
}

func inventoryLine(inv *components.InventoryData) string {
	names := make([]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		if !item.Valid() {
			continue
		}
		names = append(names, components.Item.Get(item).Name)
	}
	if len(names) == 0 {
		return ""
	}
	return "Carrying: " + strings.Join(names, ", ")
}

// fade scales c's alpha by a.
func fade(c color.RGBA, a float32) color.Color {
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * a)}
}
