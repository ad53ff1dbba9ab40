package recording

import (
	"slices"

	"github.com/gogpu/gg"
)

// Target is anything a recording can be replayed onto. It has the method
// set of storyring.Canvas.
type Target interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)
	ResetClip()
	MoveTo(x, y float64)
	Arc(cx, cy, r, angle1, angle2 float64)
	Ellipse(cx, cy, rx, ry float64)
	ClipStroke(width float64, lineCap gg.LineCap)
	FillLinearGradient(x0, y0, x1, y1 float64, stops []gg.ColorStop)
}

// Recorder records canvas calls as commands.
//
// Recorder is NOT safe for concurrent use.
type Recorder struct {
	width    float64
	height   float64
	commands []Command
}

// Recorder satisfies the canvas contract it records.
var _ Target = (*Recorder)(nil)

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 32),
	}
}

// Commands returns the recorded commands. The slice is owned by the
// recorder until the next call to Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands of type t in order.
func (r *Recorder) Filter(t CommandType) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			out = append(out, cmd)
		}
	}
	return out
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recorded commands onto t in order.
func (r *Recorder) Playback(t Target) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearRectCommand:
			t.ClearRect(c.X, c.Y, c.W, c.H)
		case ResetClipCommand:
			t.ResetClip()
		case MoveToCommand:
			t.MoveTo(c.Point.X, c.Point.Y)
		case ArcCommand:
			t.Arc(c.Center.X, c.Center.Y, c.Radius, c.Start, c.End)
		case EllipseCommand:
			t.Ellipse(c.Center.X, c.Center.Y, c.RadiusX, c.RadiusY)
		case ClipStrokeCommand:
			t.ClipStroke(c.Width, c.Cap)
		case FillLinearGradientCommand:
			t.FillLinearGradient(c.Start.X, c.Start.Y, c.End.X, c.End.Y, c.Stops)
		}
	}
}

// Size returns the recorded canvas size.
func (r *Recorder) Size() (w, h float64) {
	return r.width, r.height
}

// ClearRect records a ClearRectCommand.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.commands = append(r.commands, ClearRectCommand{X: x, Y: y, W: w, H: h})
}

// ResetClip records a ResetClipCommand.
func (r *Recorder) ResetClip() {
	r.commands = append(r.commands, ResetClipCommand{})
}

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveToCommand{Point: gg.Pt(x, y)})
}

// Arc records an ArcCommand. Unlike raster canvases the recorder keeps
// arcs with a non-positive sweep so degenerate geometry stays visible.
func (r *Recorder) Arc(cx, cy, radius, angle1, angle2 float64) {
	r.commands = append(r.commands, ArcCommand{
		Center: gg.Pt(cx, cy),
		Radius: radius,
		Start:  angle1,
		End:    angle2,
	})
}

// Ellipse records an EllipseCommand.
func (r *Recorder) Ellipse(cx, cy, rx, ry float64) {
	r.commands = append(r.commands, EllipseCommand{
		Center:  gg.Pt(cx, cy),
		RadiusX: rx,
		RadiusY: ry,
	})
}

// ClipStroke records a ClipStrokeCommand.
func (r *Recorder) ClipStroke(width float64, lineCap gg.LineCap) {
	r.commands = append(r.commands, ClipStrokeCommand{Width: width, Cap: lineCap})
}

// FillLinearGradient records a FillLinearGradientCommand. The stops are
// copied.
func (r *Recorder) FillLinearGradient(x0, y0, x1, y1 float64, stops []gg.ColorStop) {
	r.commands = append(r.commands, FillLinearGradientCommand{
		Start: gg.Pt(x0, y0),
		End:   gg.Pt(x1, y1),
		Stops: slices.Clone(stops),
	})
}
