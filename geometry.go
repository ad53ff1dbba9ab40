package storyring

import (
	"math"

	"github.com/gogpu/gg"
)

// restingSpacing is the gap between segments, in canvas units, at progress 1.
const restingSpacing = 3.0

// ImageDiameter returns the canvas side a ring needs for an avatar of the
// given diameter. The outer inset is twice the active line width on each
// side whichever width is drawn, so segmented and single-ring renders share
// one bounding box.
func ImageDiameter(d Descriptor, availableDiameter float64) float64 {
	return availableDiameter + 4*d.activeLineWidth
}

// Layout is the arc geometry of a segmented ring.
//
// Angles are in radians in the y-down canvas space: -π/2 is 12 o'clock and
// increasing angles run clockwise.
type Layout struct {
	Center    gg.Point
	Diameter  float64
	Radius    float64
	LineWidth float64

	// Spacing is the linear gap between neighbouring segments.
	Spacing float64
	// AngularSpacing is Spacing expressed as an angle at Radius.
	AngularSpacing float64
	// SegmentAngle is the angular length of every segment. It is not clamped
	// and becomes non-positive when the counters ask for more segments than
	// the circumference can hold.
	SegmentAngle float64

	Total int
	Seen  int
}

// NewLayout computes the segment geometry for d on a canvas of the given
// size. progress scales the gap between segments: 0 makes them touch, 1 is
// the resting gap.
//
// The result is only meaningful when d.Segmented() is true.
func NewLayout(d Descriptor, progress, availableDiameter, canvasWidth, canvasHeight float64) Layout {
	l := Layout{
		Center:    gg.Pt(canvasWidth*0.5, canvasHeight*0.5),
		Diameter:  ImageDiameter(d, availableDiameter),
		LineWidth: d.LineWidth(),
		Total:     d.counters.TotalCount,
		Seen:      d.counters.SeenCount(),
	}
	l.Radius = (l.Diameter - l.LineWidth) * 0.5
	l.Spacing = restingSpacing * progress
	l.AngularSpacing = l.Spacing / l.Radius

	n := float64(l.Total)
	circumference := 2 * math.Pi * l.Radius
	segmentLength := (circumference - l.Spacing*n) / n
	l.SegmentAngle = segmentLength / l.Radius
	return l
}

// Segment is the angular range [Start, End) covered by one story.
type Segment struct {
	Index int
	Start float64
	End   float64
}

// Segment returns the arc of segment i.
func (l Layout) Segment(i int) Segment {
	start := float64(i)*(l.AngularSpacing+l.SegmentAngle) - math.Pi*0.5 + l.AngularSpacing*0.5
	return Segment{Index: i, Start: start, End: start + l.SegmentAngle}
}

// StartPoint returns the canvas point where segment s begins.
func (l Layout) StartPoint(s Segment) gg.Point {
	return gg.Pt(
		l.Center.X+math.Cos(s.Start)*l.Radius,
		l.Center.Y+math.Sin(s.Start)*l.Radius,
	)
}

// PassKind identifies one of the two fills of a segmented ring.
type PassKind uint8

const (
	// PassSeen fills the seen segments with the inactive gradient.
	PassSeen PassKind = iota
	// PassUnseen fills the unseen segments with the active gradient.
	PassUnseen
)

// String returns the pass name.
func (k PassKind) String() string {
	switch k {
	case PassSeen:
		return "seen"
	case PassUnseen:
		return "unseen"
	default:
		return "unknown"
	}
}

// Pass is a contiguous index range [Start, End) drawn with one gradient.
// Seen stories always come first: indices below the seen count are seen,
// the rest are unseen.
type Pass struct {
	Kind  PassKind
	Start int
	End   int
}

// Empty reports whether the pass covers no segments.
func (p Pass) Empty() bool {
	return p.Start >= p.End
}

// Len returns the number of segments in the pass.
func (p Pass) Len() int {
	if p.Empty() {
		return 0
	}
	return p.End - p.Start
}

// Passes returns the seen pass followed by the unseen pass. Together they
// cover [0, Total) without gaps or overlap.
func (l Layout) Passes() [2]Pass {
	return [2]Pass{
		{Kind: PassSeen, Start: 0, End: l.Seen},
		{Kind: PassUnseen, Start: l.Seen, End: l.Total},
	}
}

// Ellipse is the circle stroked by the single-ring fallback.
type Ellipse struct {
	Center    gg.Point
	RadiusX   float64
	RadiusY   float64
	LineWidth float64
}

// FallbackEllipse computes the fallback circle for d on a canvas of the given
// size. The rectangle has the canvas size, is positioned so a ring of the
// image diameter is centered, and is inset by half the line width so the
// stroke stays inside it.
func FallbackEllipse(d Descriptor, availableDiameter, canvasWidth, canvasHeight float64) Ellipse {
	lineWidth := d.LineWidth()
	diameter := ImageDiameter(d, availableDiameter)

	x := canvasWidth*0.5 - diameter*0.5 + lineWidth*0.5
	y := canvasHeight*0.5 - diameter*0.5 + lineWidth*0.5
	w := canvasWidth - lineWidth
	h := canvasHeight - lineWidth

	return Ellipse{
		Center:    gg.Pt(x+w*0.5, y+h*0.5),
		RadiusX:   w * 0.5,
		RadiusY:   h * 0.5,
		LineWidth: lineWidth,
	}
}
