package storyring

import "github.com/gogpu/gg"

// Canvas is the 2D vector surface a ring is drawn into.
//
// Canvas keeps a current path and a clip region. Drawing a ring never
// strokes or fills the path directly: the path's stroked outline becomes the
// clip and a gradient is filled through it.
//
// Implementations live in the ggcanvas (raster) and recording packages.
type Canvas interface {
	// Size returns the canvas width and height.
	Size() (w, h float64)

	// ClearRect sets every pixel in the rectangle to transparent.
	ClearRect(x, y, w, h float64)

	// ResetClip removes all clipping, making the whole canvas drawable.
	ResetClip()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// Arc appends a circular arc from angle1 to angle2, increasing. Raster
	// canvases append nothing for a non-positive sweep.
	Arc(cx, cy, r, angle1, angle2 float64)

	// Ellipse appends a closed axis-aligned ellipse.
	Ellipse(cx, cy, rx, ry float64)

	// ClipStroke replaces the current path with its stroked outline of the
	// given width and cap, intersects the clip with it and clears the path.
	ClipStroke(width float64, lineCap gg.LineCap)

	// FillLinearGradient fills the whole canvas, through the clip, with a
	// linear gradient from (x0, y0) to (x1, y1).
	FillLinearGradient(x0, y0, x1, y1 float64, stops []gg.ColorStop)
}
