/*
Package outline connects contours to the golang.org/x/image font and
rasterization packages.

Glyph outlines loaded with sfnt are converted into contours with FromSegments,
and contours are converted back into sfnt segments with ToSegments. Rasterize
fills closed contours into an alpha mask, which is what an editor needs for
previews and for hit-testing the filled shape.

sfnt works in a y-down space with 26.6 fixed point coordinates, while contours
live in a y-up design space. All conversions take an affine transform mapping
from the source space to the destination space; pass contour.FlipY to convert
between the two orientations.

TrueType outlines use quadratic Béziers. Contours only store cubic Béziers, so
quadratic segments are converted into the equivalent cubic segments on import.
*/
package outline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// ErrInvalidSize is returned when a raster has no pixels.
var ErrInvalidSize = errors.New("outline: invalid raster size")

// tracer writes to trace with key 'glyphs.outline'
func tracer() tracing.Trace {
	return tracing.Select("glyphs.outline")
}
