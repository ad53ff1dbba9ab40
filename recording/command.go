package recording

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdClearRect CommandType = iota // Clear a rectangle to transparent
	CmdResetClip                    // Remove the clip

	// Path commands
	CmdMoveTo  // Start a subpath
	CmdArc     // Append a circular arc
	CmdEllipse // Append a closed ellipse

	// Compositing commands
	CmdClipStroke         // Clip to the stroked outline of the path
	CmdFillLinearGradient // Fill the canvas through the clip
)

var commandTypeNames = [...]string{
	CmdClearRect:          "ClearRect",
	CmdResetClip:          "ResetClip",
	CmdMoveTo:             "MoveTo",
	CmdArc:                "Arc",
	CmdEllipse:            "Ellipse",
	CmdClipStroke:         "ClipStroke",
	CmdFillLinearGradient: "FillLinearGradient",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearRectCommand clears a rectangle to transparent.
type ClearRectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// ResetClipCommand removes the clip.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() CommandType { return CmdResetClip }

// MoveToCommand starts a subpath.
type MoveToCommand struct {
	Point gg.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// ArcCommand appends a circular arc.
type ArcCommand struct {
	Center gg.Point
	Radius float64
	// Start and End are the arc angles in radians, End >= Start for drawn arcs.
	Start float64
	End   float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// Sweep returns the angular length of the arc.
func (c ArcCommand) Sweep() float64 {
	return c.End - c.Start
}

// EllipseCommand appends a closed ellipse.
type EllipseCommand struct {
	Center  gg.Point
	RadiusX float64
	RadiusY float64
}

// Type implements Command.
func (EllipseCommand) Type() CommandType { return CmdEllipse }

// ClipStrokeCommand clips to the stroked outline of the current path.
type ClipStrokeCommand struct {
	Width float64
	Cap   gg.LineCap
}

// Type implements Command.
func (ClipStrokeCommand) Type() CommandType { return CmdClipStroke }

// FillLinearGradientCommand fills the canvas with a linear gradient.
type FillLinearGradientCommand struct {
	Start gg.Point
	End   gg.Point
	Stops []gg.ColorStop
}

// Type implements Command.
func (FillLinearGradientCommand) Type() CommandType { return CmdFillLinearGradient }
