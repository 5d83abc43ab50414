package geometry

import (
	"math"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/material"
)

// Plane is an infinite plane defined by a point and a unit normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
}

// NewPlane creates a new plane; the normal is normalized defensively
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: mat}
}

// Hit implements the Shape interface
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-12 {
		return Hit{}, false // ray parallel to the plane
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	return Hit{
		Point:    ray.At(t),
		Normal:   p.Normal,
		T:        t,
		Material: p.Material,
	}, true
}
