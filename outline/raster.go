package outline

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"honnef.co/go/contour"
)

// RasterOptions configures Rasterize.
type RasterOptions struct {
	// Size of the mask, in pixels.
	Width, Height int
	// Transform maps design space to pixel space. The zero value means the
	// identity transform.
	Transform contour.Affine
}

// Rasterize fills the closed contours into a new alpha mask. Open contours
// have no interior and are skipped. Overlapping contours of opposite direction
// cut holes, as in a glyph.
func Rasterize(contours []*contour.Contour, opts RasterOptions) (*image.Alpha, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	aff := opts.Transform
	if aff == (contour.Affine{}) {
		aff = contour.Identity
	}

	rast := vector.NewRasterizer(opts.Width, opts.Height)
	rast.DrawOp = draw.Src
	n := 0
	for _, c := range contours {
		if !c.Closed() {
			continue
		}
		n++
		p := c.StartPoint().Point.Transform(aff)
		rast.MoveTo(float32(p.X), float32(p.Y))
		for seg := range c.Segments() {
			switch seg.Kind {
			case contour.LineSegment:
				p := seg.P1.Point.Transform(aff)
				rast.LineTo(float32(p.X), float32(p.Y))
			case contour.CubicSegment:
				b := seg.Cubic().Transform(aff)
				rast.CubeTo(
					float32(b.P1.X), float32(b.P1.Y),
					float32(b.P2.X), float32(b.P2.Y),
					float32(b.P3.X), float32(b.P3.Y),
				)
			}
		}
		rast.ClosePath()
	}
	tracer().Debugf("rasterized %d of %d contours into %dx%d mask", n, len(contours), opts.Width, opts.Height)

	img := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	rast.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img, nil
}
