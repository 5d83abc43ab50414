package geometry

import (
	"math"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/material"
)

// Sphere is an analytic sphere
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements the Shape interface by solving the ray-sphere quadratic.
// The returned normal always points outward from the center, even when the
// ray starts inside the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root within range, trying the closer one first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	return Hit{
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1 / s.Radius),
		T:        root,
		Material: s.Material,
	}, true
}
