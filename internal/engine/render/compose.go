package render

import (
	"cmp"
	"slices"

	"github.com/Faultbox/lumen/internal/engine/mesh"
	"github.com/Faultbox/lumen/pkg/math"
)

// Partition appends the opaque entries of list to opaque and the translucent
// ones to translucent, keeping list order within each bucket.
func Partition(list, opaque, translucent []mesh.Entry) ([]mesh.Entry, []mesh.Entry) {
	for _, e := range list {
		if e.Mesh.Material().Translucent {
			translucent = append(translucent, e)
		} else {
			opaque = append(opaque, e)
		}
	}
	return opaque, translucent
}

// SortBackToFront orders entries by decreasing squared distance from eye to
// each world translation. Entries at equal distance keep their order.
func SortBackToFront(entries []mesh.Entry, eye math.Vec3) {
	if len(entries) < 2 {
		return
	}
	keyed := make([]depthKey, len(entries))
	for i, e := range entries {
		keyed[i] = depthKey{entry: e, dist: e.Position().DistanceSquared(eye)}
	}
	slices.SortStableFunc(keyed, func(a, b depthKey) int {
		return cmp.Compare(b.dist, a.dist)
	})
	for i, k := range keyed {
		entries[i] = k.entry
	}
}

type depthKey struct {
	entry mesh.Entry
	dist  float32
}
