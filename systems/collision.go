package systems

import (
	"math"

	"github.com/automoto/hollowvale/tags"
	"github.com/solarlune/resolv"
)

// solids is the set of tags bodies cannot pass through.
var solids = []string{tags.ResolvSolid}

// moveResult reports which sides a move was stopped on.
type moveResult struct {
	blockedX bool
	landed   bool
	bumped   bool
}

// resolveHorizontal moves obj by dx, stopping flush against the first solid
// in the way. ignore lists colliders that never block this body. The check
// reaches one pixel further than the move so a body resting flush against
// a solid still sees it.
func resolveHorizontal(object *resolv.Object, dx float64, ignore map[*resolv.Object]bool) (float64, bool) {
	if dx == 0 {
		return 0, false
	}
	check := object.Check(dx+math.Copysign(1, dx), 0, solids...)
	if check == nil {
		object.X += dx
		return dx, false
	}

	allowed := dx
	blocked := false
	for _, other := range check.ObjectsByTags(solids...) {
		if ignore[other] || !spansY(object, other) {
			continue
		}
		if dx > 0 && other.X >= object.X+object.W-epsilon {
			if gap := other.X - (object.X + object.W); gap < allowed {
				allowed = math.Max(gap, 0)
				blocked = true
			}
		}
		if dx < 0 && other.X+other.W <= object.X+epsilon {
			if gap := other.X + other.W - object.X; gap > allowed {
				allowed = math.Min(gap, 0)
				blocked = true
			}
		}
	}
	object.X += allowed
	return allowed, blocked
}

// resolveVertical is resolveHorizontal for the Y axis.
func resolveVertical(object *resolv.Object, dy float64, ignore map[*resolv.Object]bool) (float64, bool) {
	if dy == 0 {
		return 0, false
	}
	check := object.Check(0, dy+math.Copysign(1, dy), solids...)
	if check == nil {
		object.Y += dy
		return dy, false
	}

	allowed := dy
	blocked := false
	for _, other := range check.ObjectsByTags(solids...) {
		if ignore[other] || !spansX(object, other) {
			continue
		}
		if dy > 0 && other.Y >= object.Y+object.H-epsilon {
			if gap := other.Y - (object.Y + object.H); gap < allowed {
				allowed = math.Max(gap, 0)
				blocked = true
			}
		}
		if dy < 0 && other.Y+other.H <= object.Y+epsilon {
			if gap := other.Y + other.H - object.Y; gap > allowed {
				allowed = math.Min(gap, 0)
				blocked = true
			}
		}
	}
	object.Y += allowed
	return allowed, blocked
}

// epsilon absorbs float drift when bodies rest flush against each other.
const epsilon = 1e-6

// spansY reports whether the boxes overlap on the Y axis, edges excluded.
func spansY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-epsilon && b.Y < a.Y+a.H-epsilon
}

func spansX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-epsilon && b.X < a.X+a.W-epsilon
}
