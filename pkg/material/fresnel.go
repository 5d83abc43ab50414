package material

import "math"

// SchlickReflectance approximates the Fresnel reflectance at a dielectric
// interface. cosine is the dot product of the incoming direction with the
// working normal (clamped below at zero), etaRatio the ratio of refractive
// indices across the interface. Returns a probability in [0, 1].
func SchlickReflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-math.Max(0, cosine), 5)
}
