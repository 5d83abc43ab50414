package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
	"github.com/df07/go-wavefront-raytracer/pkg/geometry"
	"github.com/df07/go-wavefront-raytracer/pkg/material"
	"github.com/df07/go-wavefront-raytracer/pkg/scene"
)

const (
	hitTMin = 0.001
	hitTMax = 1e9
)

// Renderer runs the wavefront bounce loop: one flat buffer of path
// segments, shaded breadth-first one bounce at a time, compacted between
// bounces. Segments never share state, so each bounce shades in parallel
// goroutine chunks.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	numWorkers int
}

// NewRenderer creates a renderer for the scene using one worker per CPU
func NewRenderer(sc *scene.Scene) *Renderer {
	return &Renderer{
		scene:      sc,
		camera:     NewCamera(sc.CameraPosition, sc.CameraLookAt, sc.CameraFOV, sc.Width, sc.Height),
		numWorkers: runtime.NumCPU(),
	}
}

// Render traces SamplesPerPixel full frames and resolves them into an
// image. The seed offsets every per-segment random stream, so the same
// scene and seed always produce the same image.
func (r *Renderer) Render(seed int) *image.RGBA {
	width, height := r.scene.Width, r.scene.Height
	numPixels := width * height

	accum := make([]core.Vec3, numPixels)
	segs := make([]core.PathSegment, numPixels)

	for s := 0; s < r.scene.SamplesPerPixel; s++ {
		iteration := seed + s
		r.generateCameraSegments(segs, iteration)

		active := numPixels
		for bounce := 0; bounce < r.scene.MaxBounces && active > 0; bounce++ {
			r.shadeBounce(segs[:active], accum, iteration, bounce)
			active = PartitionActive(segs)
		}
		// Segments still active here ran out of bounces without reaching the
		// sky; they contribute nothing.
	}

	return r.resolve(accum)
}

// generateCameraSegments fills the buffer with one fresh segment per pixel
func (r *Renderer) generateCameraSegments(segs []core.PathSegment, iteration int) {
	width := r.scene.Width
	maxBounces := r.scene.MaxBounces

	r.parallelFor(len(segs), func(start, end int) {
		for idx := start; idx < end; idx++ {
			// Camera jitter draws from its own stream, one past the last
			// bounce index, so scattering draws are unaffected
			sampler := core.NewBounceSampler(iteration, idx, maxBounces+1)
			ray := r.camera.GetRay(idx%width, idx/width, sampler.Get2D())
			segs[idx] = core.NewPathSegment(ray, idx, maxBounces)
		}
	})
}

// shadeBounce intersects and scatters every active segment once. Misses
// bank their radiance (throughput times sky) into the accumulator and
// terminate; each segment maps to a distinct pixel within one sample pass,
// so the writes never collide.
func (r *Renderer) shadeBounce(segs []core.PathSegment, accum []core.Vec3, iteration, bounce int) {
	r.parallelFor(len(segs), func(start, end int) {
		for k := start; k < end; k++ {
			seg := &segs[k]

			hit, ok := geometry.Closest(r.scene.Shapes, seg.Ray, hitTMin, hitTMax)
			if !ok {
				radiance := seg.Color.MultiplyVec(skyColor(seg.Ray.Direction))
				accum[seg.PixelIndex] = accum[seg.PixelIndex].Add(radiance)
				seg.Terminate()
				continue
			}

			// The sampler is keyed by pixel index rather than buffer
			// position, so compaction reordering cannot change the draws a
			// path sees
			sampler := core.NewBounceSampler(iteration, seg.PixelIndex, bounce)
			material.Scatter(seg, hit.Point, hit.Normal, hit.Material, sampler)
		}
	})
}

// skyColor is the only light source: a vertical white-to-blue gradient
func skyColor(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// resolve averages the accumulator over samples and converts to sRGB
func (r *Renderer) resolve(accum []core.Vec3) *image.RGBA {
	width, height := r.scene.Width, r.scene.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	invSamples := 1 / float64(r.scene.SamplesPerPixel)
	for idx, sum := range accum {
		c := sum.Multiply(invSamples).GammaCorrect(2.0).Clamp(0, 1)
		img.Set(idx%width, idx/width, color.RGBA{
			R: uint8(255.999 * c.X),
			G: uint8(255.999 * c.Y),
			B: uint8(255.999 * c.Z),
			A: 255,
		})
	}
	return img
}

// parallelFor splits [0, n) into contiguous chunks across the worker count
func (r *Renderer) parallelFor(n int, fn func(start, end int)) {
	workers := r.numWorkers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
