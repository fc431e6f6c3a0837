// Package physics answers spatial queries against a resolv space.
package physics

import (
	"math"

	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Mask is the set of resolv tags a query considers. An object matches when
// it carries any of them.
type Mask []string

// Hit is the nearest object a ray touched.
type Hit struct {
	Object   *resolv.Object
	Point    dmath.Vec2
	Distance float64
}

// World runs overlap and ray queries against a collision space. Queries
// use a temporary probe object for the broad phase and resolv shape
// intersections for the narrow phase.
type World struct {
	space *resolv.Space
}

func NewWorld(space *resolv.Space) *World {
	return &World{space: space}
}

func (w *World) Space() *resolv.Space {
	return w.space
}

// candidates returns every object in the mask whose cells overlap the given
// box. The probe is removed before returning.
func (w *World) candidates(x, y, width, height float64, mask Mask) []*resolv.Object {
	if len(mask) == 0 {
		return nil
	}
	// Pad by a pixel: resolv maps the far edge with a -1, so a box flush
	// against a cell boundary would miss the neighbouring cell.
	probe := resolv.NewObject(x-1, y-1, width+2, height+2)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, mask...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(mask...)
}

// OverlapCircle reports whether any object in mask intersects the circle.
// A circle wholly inside a box, or a box wholly inside the circle, counts.
func (w *World) OverlapCircle(center dmath.Vec2, radius float64, mask Mask) bool {
	circle := resolv.NewCircle(center.X, center.Y, radius)
	for _, obj := range w.candidates(center.X-radius, center.Y-radius, radius*2, radius*2, mask) {
		rect := rectOf(obj)
		if circle.Intersection(0, 0, rect) != nil || rect.PointInside(vector.Vector{center.X, center.Y}) {
			return true
		}
		for _, corner := range rect.Transformed() {
			if circle.PointInside(corner) {
				return true
			}
		}
	}
	return false
}

// Raycast returns the nearest object in mask along dir within maxDist.
// dir does not need to be normalised. A ray that starts inside an object
// hits it at distance zero.
func (w *World) Raycast(origin, dir dmath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	dx, dy := dir.X/length, dir.Y/length
	endX, endY := origin.X+dx*maxDist, origin.Y+dy*maxDist
	ray := resolv.NewLine(origin.X, origin.Y, endX, endY)

	minX, maxX := math.Min(origin.X, endX), math.Max(origin.X, endX)
	minY, maxY := math.Min(origin.Y, endY), math.Max(origin.Y, endY)

	var best Hit
	found := false
	for _, obj := range w.candidates(minX, minY, maxX-minX, maxY-minY, mask) {
		hit, ok := rayHit(ray, origin, obj)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// rayHit intersects the ray with obj's box and keeps the contact point
// closest to origin.
func rayHit(ray *resolv.ConvexPolygon, origin dmath.Vec2, obj *resolv.Object) (Hit, bool) {
	rect := rectOf(obj)
	if rect.PointInside(vector.Vector{origin.X, origin.Y}) {
		return Hit{Object: obj, Point: origin}, true
	}
	contact := ray.Intersection(0, 0, rect)
	if contact == nil {
		return Hit{}, false
	}

	hit := Hit{Object: obj, Distance: math.Inf(1)}
	for _, p := range contact.Points {
		if d := math.Hypot(p.X()-origin.X, p.Y()-origin.Y); d < hit.Distance {
			hit.Distance = d
			hit.Point = dmath.Vec2{X: p.X(), Y: p.Y()}
		}
	}
	return hit, true
}

// Touching returns the objects in mask whose boxes lie within margin of obj.
func (w *World) Touching(obj *resolv.Object, margin float64, mask Mask) []*resolv.Object {
	var out []*resolv.Object
	for _, other := range w.candidates(obj.X-margin, obj.Y-margin, obj.W+margin*2, obj.H+margin*2, mask) {
		if other == obj {
			continue
		}
		if RectsTouch(obj, other, margin) {
			out = append(out, other)
		}
	}
	return out
}

// RectsTouch reports whether two boxes overlap or are separated by at most margin.
func RectsTouch(a, b *resolv.Object, margin float64) bool {
	return a.X <= b.X+b.W+margin && b.X <= a.X+a.W+margin &&
		a.Y <= b.Y+b.H+margin && b.Y <= a.Y+a.H+margin
}

// Center returns the centre point of an object's box.
func Center(obj *resolv.Object) dmath.Vec2 {
	return dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// rectOf returns obj's collision polygon placed over its current box.
// Objects built without a shape get a temporary rectangle.
func rectOf(obj *resolv.Object) *resolv.ConvexPolygon {
	if poly, ok := obj.Shape.(*resolv.ConvexPolygon); ok {
		poly.SetPosition(obj.X, obj.Y)
		return poly
	}
	return resolv.NewRectangle(obj.X, obj.Y, obj.W, obj.H)
}
