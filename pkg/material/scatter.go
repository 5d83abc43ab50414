package material

import (
	"math"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
)

const (
	// surfaceEpsilon offsets bounce origins along the normal so the new ray
	// does not immediately re-hit the surface it left (shadow acne)
	surfaceEpsilon = 1e-4

	// dielectricEpsilon is the larger offset used for dielectric bounces
	dielectricEpsilon = 0.01
)

// Scatter decides a path segment's next ray according to the surface
// material, updating the segment's ray, radiance weight and bounce counter
// in place. One invocation per segment per bounce; the segment and sampler
// are owned exclusively by the calling lane.
func Scatter(seg *core.PathSegment, hitPoint, normal core.Vec3, mat Material, sampler core.Sampler) {
	switch mat.Kind {
	case KindDiffuse:
		scatterDiffuse(seg, hitPoint, normal, mat, sampler)
	case KindMirror:
		scatterMirror(seg, hitPoint, normal, mat)
	case KindDielectric:
		scatterDielectric(seg, hitPoint, normal, mat, sampler)
	}
}

func scatterDiffuse(seg *core.PathSegment, hitPoint, normal core.Vec3, mat Material, sampler core.Sampler) {
	direction := core.SampleCosineHemisphere(normal, sampler.Get2D())
	nDotR := math.Abs(normal.Dot(direction))
	pdf := nDotR / math.Pi

	// A direction exactly perpendicular to the normal has zero probability
	// density; the sample carries no energy and the path ends here
	if pdf == 0 {
		seg.Terminate()
		return
	}

	// f·cos/pdf reduces to the albedo for cosine-weighted sampling. The
	// explicit PDF division keeps the importance-sampling derivation visible
	// and survives swapping in a different hemisphere sampler.
	f := mat.Color.Multiply(1 / math.Pi)
	seg.Color = seg.Color.MultiplyVec(f.Multiply(nDotR / pdf))
	seg.RemainingBounces--
	seg.Ray.Direction = direction
	seg.Ray.Origin = hitPoint.Add(normal.Multiply(surfaceEpsilon))
}

func scatterMirror(seg *core.PathSegment, hitPoint, normal core.Vec3, mat Material) {
	// Deterministic direction, probability 1: no PDF division
	seg.Ray.Direction = reflect(seg.Ray.Direction, normal)
	seg.Ray.Origin = hitPoint.Add(normal.Multiply(surfaceEpsilon))
	seg.Color = seg.Color.MultiplyVec(mat.SpecularColor)
	seg.RemainingBounces--
}

func scatterDielectric(seg *core.PathSegment, hitPoint, normal core.Vec3, mat Material, sampler core.Sampler) {
	// Orient the interface: a positive dot product means the ray is leaving
	// the medium, so the working normal flips and the index ratio inverts
	workingNormal := normal
	var etaRatio float64
	if seg.Ray.Direction.Dot(normal) > 0 {
		workingNormal = normal.Negate()
		etaRatio = mat.IndexOfRefraction
	} else {
		etaRatio = 1 / mat.IndexOfRefraction
	}

	cosine := seg.Ray.Direction.Dot(workingNormal)
	discriminant := 1 - etaRatio*etaRatio*(1-cosine*cosine)

	if discriminant <= 0 {
		// Total internal reflection. The reflected ray continues, but this
		// model drops its radiance weight, permanently darkening the path.
		seg.Ray.Direction = reflect(seg.Ray.Direction, workingNormal)
		seg.Ray.Origin = hitPoint.Add(workingNormal.Multiply(dielectricEpsilon))
		seg.Color = core.Vec3{}
		seg.RemainingBounces--
		return
	}

	reflectProb := SchlickReflectance(cosine, etaRatio)

	// The /1.5 skews the reflect/refract split away from the pure Fresnel
	// probability, trading bias for less noise. Kept as-is.
	if sampler.Get1D() > reflectProb/1.5 {
		refracted := refract(seg.Ray.Direction, workingNormal, etaRatio)
		seg.Ray.Direction = refracted.Normalize()
		seg.Ray.Origin = hitPoint.Add(refracted.Multiply(dielectricEpsilon))
	} else {
		seg.Ray.Direction = reflect(seg.Ray.Direction, workingNormal)
		seg.Ray.Origin = hitPoint.Add(workingNormal.Multiply(dielectricEpsilon))
	}
	seg.Color = seg.Color.MultiplyVec(mat.SpecularColor)
	seg.RemainingBounces--
}

// reflect mirrors v about the surface normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract bends unit vector v through the interface with normal n by
// Snell's law. Callers must have established that refraction is possible
// (discriminant > 0).
func refract(v, n core.Vec3, etaRatio float64) core.Vec3 {
	cosI := v.Dot(n)
	k := 1 - etaRatio*etaRatio*(1-cosI*cosI)
	return v.Multiply(etaRatio).Subtract(n.Multiply(etaRatio*cosI + math.Sqrt(k)))
}
