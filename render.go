package storyring

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/storyring/ggcanvas"
)

// DefaultProgress is the resting progress value: full gaps between segments.
const DefaultProgress = 1.0

// Render draws the ring described by d into cv and returns the image
// diameter the ring occupies.
//
// progress in [0, 1] scales the gaps between segments. availableDiameter is
// the avatar diameter the ring surrounds. The ring is centered on the canvas
// and its gradients span the full canvas height, so segments at different
// heights sample different colors of the same gradient.
//
// Render is deterministic and keeps no state between calls. The canvas is
// cleared first and left unclipped on return.
func Render(cv Canvas, d Descriptor, progress, availableDiameter float64) float64 {
	w, h := cv.Size()
	cv.ClearRect(0, 0, w, h)

	palette := ResolvePalette(d)
	imageDiameter := ImageDiameter(d, availableDiameter)

	if d.Segmented() {
		l := NewLayout(d, progress, availableDiameter, w, h)
		Logger().Debug("storyring: render segmented",
			slog.Int("total", l.Total),
			slog.Int("seen", l.Seen),
			slog.Float64("progress", progress),
			slog.Float64("radius", l.Radius),
			slog.Float64("lineWidth", l.LineWidth))
		renderSegments(cv, l, palette, h)
	} else {
		e := FallbackEllipse(d, availableDiameter, w, h)
		Logger().Debug("storyring: render fallback",
			slog.Bool("unseen", d.hasUnseen),
			slog.Float64("diameter", imageDiameter),
			slog.Float64("lineWidth", e.LineWidth))
		stops := palette.InactiveStops()
		if d.hasUnseen {
			stops = palette.ActiveStops()
		}
		renderFallback(cv, e, stops, h)
	}

	cv.ResetClip()
	return imageDiameter
}

// renderSegments draws the seen pass, then the unseen pass. Each non-empty
// pass gets a fresh clip made of all its segments' stroked arcs.
func renderSegments(cv Canvas, l Layout, p Palette, height float64) {
	for _, pass := range l.Passes() {
		if pass.Empty() {
			continue
		}
		cv.ResetClip()
		for i := pass.Start; i < pass.End; i++ {
			s := l.Segment(i)
			start := l.StartPoint(s)
			cv.MoveTo(start.X, start.Y)
			cv.Arc(l.Center.X, l.Center.Y, l.Radius, s.Start, s.End)
		}
		cv.ClipStroke(l.LineWidth, gg.LineCapRound)

		stops := p.InactiveStops()
		if pass.Kind == PassUnseen {
			stops = p.ActiveStops()
		}
		cv.FillLinearGradient(0, 0, 0, height, stops)
	}
}

func renderFallback(cv Canvas, e Ellipse, stops []gg.ColorStop, height float64) {
	cv.ResetClip()
	cv.Ellipse(e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY)
	cv.ClipStroke(e.LineWidth, gg.LineCapButt)
	cv.FillLinearGradient(0, 0, 0, height, stops)
}

// Draw renders d into a new square gg context whose side is the image
// diameter rounded up to whole pixels.
func Draw(d Descriptor, progress, availableDiameter float64) *gg.Context {
	side := int(math.Ceil(ImageDiameter(d, availableDiameter)))
	if side < 1 {
		side = 1
	}
	dc := gg.NewContext(side, side)
	Render(ggcanvas.New(dc), d, progress, availableDiameter)
	return dc
}
