package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/scene"
)

func testScene(t *testing.T, spec *scene.Spec) *scene.Scene {
	t.Helper()
	sc, err := scene.Build(spec)
	if err != nil {
		t.Fatalf("building test scene: %v", err)
	}
	return sc
}

func smallSpec() *scene.Spec {
	return &scene.Spec{
		Width:           16,
		Height:          12,
		SamplesPerPixel: 2,
		MaxBounces:      4,
		Camera:          scene.CameraSpec{Position: scene.Vec{Y: 1, Z: 3}, LookAt: scene.Vec{Y: 0.5}, FOV: 40},
		Materials: []scene.MaterialSpec{
			{Name: "ground", Color: scene.Color{R: 0.5, G: 0.5, B: 0.5}},
			{Name: "glass", SpecularColor: scene.Color{R: 1, G: 1, B: 1},
				HasReflective: 1, HasRefractive: 1, IndexOfRefraction: 1.5},
		},
		Spheres: []scene.SphereSpec{
			{Center: scene.Vec{Y: 0.5}, Radius: 0.5, Material: "glass"},
		},
		Planes: []scene.PlaneSpec{
			{Normal: scene.Vec{Y: 1}, Material: "ground"},
		},
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	sc := testScene(t, smallSpec())

	first := NewRenderer(sc).Render(1)
	second := NewRenderer(sc).Render(1)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("identical scene and seed produced different images")
	}

	different := NewRenderer(sc).Render(2)
	if bytes.Equal(first.Pix, different.Pix) {
		t.Error("different seeds produced identical images")
	}
}

func TestRenderer_ImageDimensions(t *testing.T) {
	sc := testScene(t, smallSpec())
	img := NewRenderer(sc).Render(0)

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("image size: got %dx%d, want 16x12", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EmptySceneIsSky(t *testing.T) {
	spec := smallSpec()
	spec.Spheres = nil
	spec.Planes = nil
	spec.Materials = nil
	sc := testScene(t, spec)

	img := NewRenderer(sc).Render(0)

	// Every path hits the sky on its first bounce; the white-to-blue
	// gradient keeps B >= G >= R everywhere and nothing is black
	for j := 0; j < 12; j++ {
		for i := 0; i < 16; i++ {
			r, g, b, a := img.At(i, j).RGBA()
			if a != 0xffff {
				t.Fatalf("pixel (%d,%d): alpha %d", i, j, a)
			}
			if b < g || g < r {
				t.Fatalf("pixel (%d,%d): not sky-colored (r=%d g=%d b=%d)", i, j, r, g, b)
			}
			if b == 0 {
				t.Fatalf("pixel (%d,%d): sky rendered black", i, j)
			}
		}
	}
}

func TestRenderer_SceneDarkensFloor(t *testing.T) {
	// A gray floor reflects at most half the sky per bounce, so rays that
	// hit it end darker than pure sky pixels. Compare the bottom image row
	// (floor) against the top row (sky).
	sc := testScene(t, smallSpec())
	img := NewRenderer(sc).Render(3)

	rowLuma := func(j int) uint64 {
		var sum uint64
		for i := 0; i < 16; i++ {
			r, g, b, _ := img.At(i, j).RGBA()
			sum += uint64(r) + uint64(g) + uint64(b)
		}
		return sum
	}

	if floor, sky := rowLuma(11), rowLuma(0); floor >= sky {
		t.Errorf("floor row should be darker than sky row: floor=%d sky=%d", floor, sky)
	}
}

func TestSkyColor_Gradient(t *testing.T) {
	up := skyColor(core.NewVec3(0, 1, 0))
	down := skyColor(core.NewVec3(0, -1, 0))

	// Looking up is the blue end, looking down the white end
	if up.X >= down.X {
		t.Errorf("red channel should fall toward the zenith: up=%g down=%g", up.X, down.X)
	}
	if up.Z != 1 || down.Z != 1 {
		t.Errorf("blue channel is constant 1 across the gradient: up=%g down=%g", up.Z, down.Z)
	}
}
