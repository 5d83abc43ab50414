package renderer

import "github.com/df07/go-wavefront-raytracer/pkg/core"

// PartitionActive reorders segments so the active ones occupy the front of
// the slice, preserving relative order within both groups, and returns the
// active count. The partition key is IsActive only, which is stable under
// re-evaluation, so calling this again without intervening shading is a
// no-op.
func PartitionActive(segs []core.PathSegment) int {
	terminated := make([]core.PathSegment, 0, len(segs))
	active := 0

	for i := range segs {
		if segs[i].IsActive() {
			segs[active] = segs[i]
			active++
		} else {
			terminated = append(terminated, segs[i])
		}
	}

	copy(segs[active:], terminated)
	return active
}
