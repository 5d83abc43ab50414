package scene

import (
	"fmt"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/geometry"
	"github.com/df07/go-wavefront-raytracer/pkg/material"
)

// Vec is a YAML-friendly 3D vector
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Color is a YAML-friendly linear RGB triple
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

func (v Vec) vec3() core.Vec3   { return core.NewVec3(v.X, v.Y, v.Z) }
func (c Color) vec3() core.Vec3 { return core.NewVec3(c.R, c.G, c.B) }

// MaterialSpec declares a material the way the shading core expects it:
// reflective/refractive flags as 0/1 floats resolved into a closed kind tag
// when the scene is built.
type MaterialSpec struct {
	Name              string  `yaml:"name"`
	Color             Color   `yaml:"color"`
	SpecularColor     Color   `yaml:"specular_color"`
	HasReflective     float64 `yaml:"has_reflective"`
	HasRefractive     float64 `yaml:"has_refractive"`
	IndexOfRefraction float64 `yaml:"index_of_refraction"`
}

// SphereSpec declares a sphere referencing a material by name
type SphereSpec struct {
	Center   Vec     `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// PlaneSpec declares an infinite plane referencing a material by name
type PlaneSpec struct {
	Point    Vec    `yaml:"point"`
	Normal   Vec    `yaml:"normal"`
	Material string `yaml:"material"`
}

// CameraSpec declares the viewpoint
type CameraSpec struct {
	Position Vec     `yaml:"position"`
	LookAt   Vec     `yaml:"look_at"`
	FOV      float64 `yaml:"fov"` // vertical field of view, degrees
}

// Spec is the on-disk scene description
type Spec struct {
	Width           int            `yaml:"width"`
	Height          int            `yaml:"height"`
	SamplesPerPixel int            `yaml:"samples_per_pixel"`
	MaxBounces      int            `yaml:"max_bounces"`
	Camera          CameraSpec     `yaml:"camera"`
	Materials       []MaterialSpec `yaml:"materials"`
	Spheres         []SphereSpec   `yaml:"spheres"`
	Planes          []PlaneSpec    `yaml:"planes"`
}

// Scene is the validated, render-ready form of a Spec
type Scene struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxBounces      int
	CameraPosition  core.Vec3
	CameraLookAt    core.Vec3
	CameraFOV       float64
	Shapes          []geometry.Shape
}

// Build validates a Spec and assembles the scene. Material flag
// combinations are resolved here so that nothing invalid ever reaches the
// shading loop.
func Build(spec *Spec) (*Scene, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("image size %dx%d is invalid", spec.Width, spec.Height)
	}
	if spec.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples_per_pixel must be positive, got %d", spec.SamplesPerPixel)
	}
	if spec.MaxBounces <= 0 {
		return nil, fmt.Errorf("max_bounces must be positive, got %d", spec.MaxBounces)
	}

	materials := make(map[string]material.Material, len(spec.Materials))
	for _, ms := range spec.Materials {
		if ms.Name == "" {
			return nil, fmt.Errorf("material without a name")
		}
		if _, exists := materials[ms.Name]; exists {
			return nil, fmt.Errorf("duplicate material %q", ms.Name)
		}

		kind, err := material.ResolveKind(ms.HasReflective, ms.HasRefractive)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", ms.Name, err)
		}
		if kind == material.KindDielectric && ms.IndexOfRefraction <= 0 {
			return nil, fmt.Errorf("material %q: dielectric requires a positive index of refraction", ms.Name)
		}

		materials[ms.Name] = material.Material{
			Kind:              kind,
			Color:             ms.Color.vec3(),
			SpecularColor:     ms.SpecularColor.vec3(),
			IndexOfRefraction: ms.IndexOfRefraction,
		}
	}

	sc := &Scene{
		Width:           spec.Width,
		Height:          spec.Height,
		SamplesPerPixel: spec.SamplesPerPixel,
		MaxBounces:      spec.MaxBounces,
		CameraPosition:  spec.Camera.Position.vec3(),
		CameraLookAt:    spec.Camera.LookAt.vec3(),
		CameraFOV:       spec.Camera.FOV,
	}

	for i, ss := range spec.Spheres {
		mat, ok := materials[ss.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d references unknown material %q", i, ss.Material)
		}
		if ss.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d has non-positive radius %v", i, ss.Radius)
		}
		sc.Shapes = append(sc.Shapes, geometry.NewSphere(ss.Center.vec3(), ss.Radius, mat))
	}

	for i, ps := range spec.Planes {
		mat, ok := materials[ps.Material]
		if !ok {
			return nil, fmt.Errorf("plane %d references unknown material %q", i, ps.Material)
		}
		normal := ps.Normal.vec3()
		if normal.IsZero() {
			return nil, fmt.Errorf("plane %d has a zero normal", i)
		}
		sc.Shapes = append(sc.Shapes, geometry.NewPlane(ps.Point.vec3(), normal, mat))
	}

	return sc, nil
}

// Default returns the built-in demo scene: a diffuse, a mirror and a glass
// sphere above a diffuse ground plane
func Default() *Scene {
	sc, err := Build(&Spec{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 16,
		MaxBounces:      8,
		Camera: CameraSpec{
			Position: Vec{X: 0, Y: 1, Z: 3},
			LookAt:   Vec{X: 0, Y: 0.5, Z: 0},
			FOV:      40,
		},
		Materials: []MaterialSpec{
			{Name: "ground", Color: Color{R: 0.5, G: 0.5, B: 0.5}},
			{Name: "matte", Color: Color{R: 0.8, G: 0.3, B: 0.3}},
			{Name: "mirror", SpecularColor: Color{R: 0.9, G: 0.9, B: 0.9}, HasReflective: 1},
			{Name: "glass", SpecularColor: Color{R: 1, G: 1, B: 1},
				HasReflective: 1, HasRefractive: 1, IndexOfRefraction: 1.5},
		},
		Spheres: []SphereSpec{
			{Center: Vec{X: -1.1, Y: 0.5, Z: 0}, Radius: 0.5, Material: "matte"},
			{Center: Vec{X: 0, Y: 0.5, Z: 0}, Radius: 0.5, Material: "glass"},
			{Center: Vec{X: 1.1, Y: 0.5, Z: 0}, Radius: 0.5, Material: "mirror"},
		},
		Planes: []PlaneSpec{
			{Point: Vec{X: 0, Y: 0, Z: 0}, Normal: Vec{X: 0, Y: 1, Z: 0}, Material: "ground"},
		},
	})
	if err != nil {
		panic(err) // the built-in scene is always valid
	}
	return sc
}
