package material

import (
	"fmt"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
)

// Kind enumerates the closed set of scattering behaviors. Scene loading
// resolves the reflective/refractive flag pair into a Kind once, so the
// shading loop dispatches on a validated tag instead of re-interpreting
// flags per bounce.
type Kind int

const (
	KindDiffuse Kind = iota
	KindMirror
	KindDielectric
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindMirror:
		return "mirror"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is an immutable surface description. Color is the diffuse
// albedo; SpecularColor attenuates mirror and dielectric bounces;
// IndexOfRefraction is only meaningful for dielectrics.
type Material struct {
	Kind              Kind
	Color             core.Vec3
	SpecularColor     core.Vec3
	IndexOfRefraction float64
}

// ResolveKind maps the reflective/refractive flag pair (stored as 0/1
// floats in scene descriptions) onto the Kind set. A refractive surface
// that is not also reflective has no defined scattering behavior, so it is
// rejected here rather than silently ignored at shading time.
func ResolveKind(hasReflective, hasRefractive float64) (Kind, error) {
	switch {
	case hasReflective == 0 && hasRefractive == 0:
		return KindDiffuse, nil
	case hasReflective != 0 && hasRefractive == 0:
		return KindMirror, nil
	case hasReflective != 0 && hasRefractive != 0:
		return KindDielectric, nil
	default:
		return 0, fmt.Errorf("refractive material must also be reflective (reflective=%v refractive=%v)",
			hasReflective, hasRefractive)
	}
}
