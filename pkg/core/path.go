package core

// PathSegment carries the state of one camera path between bounces: the
// current ray, the accumulated radiance weight (component-wise
// multiplicative), and the number of bounces left. Each segment is owned
// exclusively by one lane during a bounce; nothing here is shared.
type PathSegment struct {
	Ray              Ray
	Color            Vec3
	PixelIndex       int
	RemainingBounces int
}

// NewPathSegment creates a fresh segment for a camera ray with unit
// radiance weight
func NewPathSegment(ray Ray, pixelIndex, maxBounces int) PathSegment {
	return PathSegment{
		Ray:              ray,
		Color:            NewVec3(1, 1, 1),
		PixelIndex:       pixelIndex,
		RemainingBounces: maxBounces,
	}
}

// IsActive reports whether the segment still needs shading. Pure and
// idempotent, so it is safe as a partition key for stream compaction.
func (p *PathSegment) IsActive() bool {
	return p.RemainingBounces > 0
}

// Terminate marks the segment as a contributes-nothing path: the color is
// zeroed and the bounce counter cleared in the same step, keeping the
// invariant that a zero-collapsed color never stays active.
func (p *PathSegment) Terminate() {
	p.Color = Vec3{}
	p.RemainingBounces = 0
}
