package core

import "math"

// sqrtOneThird is the axis-selection threshold: at least one component of a
// unit vector is always below sqrt(1/3) in absolute value, so the chosen
// world axis is never nearly parallel to the normal.
const sqrtOneThird = 0.57735026918962576

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around normal. The PDF of the returned direction is cos(θ)/π,
// which cancels against the Lambertian BRDF during importance sampling.
// Consumes exactly one 2D sample.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	cosTheta := math.Sqrt(sample.X)
	sinTheta := math.Sqrt(1 - sample.X)
	phi := 2 * math.Pi * sample.Y

	// Pick a fixed world axis not nearly parallel to the normal, then build
	// an orthonormal basis from it with two cross products
	var axis Vec3
	if math.Abs(normal.X) < sqrtOneThird {
		axis = NewVec3(1, 0, 0)
	} else if math.Abs(normal.Y) < sqrtOneThird {
		axis = NewVec3(0, 1, 0)
	} else {
		axis = NewVec3(0, 0, 1)
	}

	tangent := normal.Cross(axis).Normalize()
	bitangent := normal.Cross(tangent).Normalize()

	return normal.Multiply(cosTheta).
		Add(tangent.Multiply(math.Cos(phi) * sinTheta)).
		Add(bitangent.Multiply(math.Sin(phi) * sinTheta))
}
