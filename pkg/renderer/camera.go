package renderer

import (
	"math"

	"github.com/df07/go-wavefront-raytracer/pkg/core"
)

// Camera generates primary rays through a look-at viewport
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width, height   int
}

// NewCamera creates a pinhole camera. vfov is the vertical field of view in
// degrees; width and height are the image dimensions in pixels.
func NewCamera(position, lookAt core.Vec3, vfov float64, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	theta := vfov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := position.Subtract(lookAt).Normalize()
	u := core.NewVec3(0, 1, 0).Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := position.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          position,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           width,
		height:          height,
	}
}

// GetRay generates a unit-direction ray through pixel (i, j), jittered
// within the pixel by the sample for anti-aliasing. Pixel (0, 0) is the top
// left of the image.
func (c *Camera) GetRay(i, j int, sample core.Vec2) core.Ray {
	s := (float64(i) + sample.X) / float64(c.width)
	t := 1 - (float64(j)+sample.Y)/float64(c.height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction)
}
