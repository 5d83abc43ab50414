package geometry

import (
	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/material"
)

// Hit contains the geometric result of a ray-shape intersection. Normal is
// the geometric surface normal, never flipped toward the incoming ray;
// interface orientation is the material dispatcher's job.
type Hit struct {
	Point    core.Vec3
	Normal   core.Vec3
	T        float64
	Material material.Material
}

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)
}

// Closest returns the nearest intersection along the ray, scanning all
// shapes linearly
func Closest(shapes []Shape, ray core.Ray, tMin, tMax float64) (Hit, bool) {
	var closest Hit
	found := false
	closestT := tMax

	for _, shape := range shapes {
		if hit, ok := shape.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
			found = true
		}
	}

	return closest, found
}
