package render

import (
	"image/color"
	"testing"

	"github.com/automoto/hollowvale/components"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestViewCentresCamera(t *testing.T) {
	v := newView(math.Vec2{X: 400, Y: 200}, 640, 360)

	x, y := v.point(math.Vec2{X: 400, Y: 200})
	assert.Equal(t, float32(320), x)
	assert.Equal(t, float32(180), y)

	assert.True(t, v.visible(resolv.NewObject(90, 100, 10, 10)), "inside the padding")
	assert.False(t, v.visible(resolv.NewObject(0, 100, 10, 10)))
	assert.False(t, v.visible(resolv.NewObject(400, 600, 10, 10)))
}

func TestFade(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 100}, fade(color.RGBA{10, 20, 30, 200}, 0.5))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 200}, fade(color.RGBA{10, 20, 30, 200}, 3))
}

func TestInventoryLineSkipsDestroyedItems(t *testing.T) {
	w := donburi.NewWorld()
	newItem := func(name string) *donburi.Entry {
		e := w.Entry(w.Create(components.Item))
		components.Item.SetValue(e, components.ItemData{Name: name})
		return e
	}
	bucket, lantern := newItem("bucket"), newItem("lantern")
	inv := &components.InventoryData{Items: []*donburi.Entry{bucket, lantern}}

	assert.Equal(t, "Carrying: bucket, lantern", inventoryLine(inv))

	w.Remove(lantern.Entity())
	assert.Equal(t, "Carrying: bucket", inventoryLine(inv))

	assert.Empty(t, inventoryLine(&components.InventoryData{}))
}
