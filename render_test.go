package storyring

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/storyring/recording"
)

func commandTypes(cmds []recording.Command) []recording.CommandType {
	types := make([]recording.CommandType, len(cmds))
	for i, c := range cmds {
		types[i] = c.Type()
	}
	return types
}

func fills(rec *recording.Recorder) []recording.FillLinearGradientCommand {
	var out []recording.FillLinearGradientCommand
	for _, c := range rec.Filter(recording.CmdFillLinearGradient) {
		out = append(out, c.(recording.FillLinearGradientCommand))
	}
	return out
}

func TestRenderSegmentedCommandStream(t *testing.T) {
	d := NewDescriptor(WithCounters(5, 2))
	rec := recording.NewRecorder(64, 64)

	got := Render(rec, d, 1, 58)
	if got != 64 {
		t.Errorf("Render() = %v, want 64", got)
	}

	want := []recording.CommandType{
		recording.CmdClearRect,
		// seen pass: segments 0, 1, 2
		recording.CmdResetClip,
		recording.CmdMoveTo, recording.CmdArc,
		recording.CmdMoveTo, recording.CmdArc,
		recording.CmdMoveTo, recording.CmdArc,
		recording.CmdClipStroke,
		recording.CmdFillLinearGradient,
		// unseen pass: segments 3, 4
		recording.CmdResetClip,
		recording.CmdMoveTo, recording.CmdArc,
		recording.CmdMoveTo, recording.CmdArc,
		recording.CmdClipStroke,
		recording.CmdFillLinearGradient,
		// leave the canvas unclipped
		recording.CmdResetClip,
	}
	if types := commandTypes(rec.Commands()); !reflect.DeepEqual(types, want) {
		t.Fatalf("command types =\n%v\nwant\n%v", types, want)
	}

	cr := rec.Commands()[0].(recording.ClearRectCommand)
	if cr != (recording.ClearRectCommand{X: 0, Y: 0, W: 64, H: 64}) {
		t.Errorf("ClearRect = %+v, want full canvas", cr)
	}

	p := ResolvePalette(d)
	f := fills(rec)
	if !reflect.DeepEqual(f[0].Stops, p.InactiveStops()) {
		t.Errorf("seen pass stops = %+v, want inactive", f[0].Stops)
	}
	if !reflect.DeepEqual(f[1].Stops, p.ActiveStops()) {
		t.Errorf("unseen pass stops = %+v, want active", f[1].Stops)
	}
	for i, fill := range f {
		if fill.Start != gg.Pt(0, 0) || fill.End != gg.Pt(0, 64) {
			t.Errorf("fill %d spans %+v -> %+v, want (0,0) -> (0,64)", i, fill.Start, fill.End)
		}
	}
}

func TestRenderSegmentedArcs(t *testing.T) {
	d := NewDescriptor(WithCounters(5, 2))
	rec := recording.NewRecorder(64, 64)
	Render(rec, d, 1, 58)

	l := NewLayout(d, 1, 58, 64, 64)
	arcs := rec.Filter(recording.CmdArc)
	moves := rec.Filter(recording.CmdMoveTo)
	if len(arcs) != 5 || len(moves) != 5 {
		t.Fatalf("arcs, moves = %d, %d, want 5, 5", len(arcs), len(moves))
	}

	for i, c := range arcs {
		arc := c.(recording.ArcCommand)
		s := l.Segment(i)
		if arc.Start != s.Start || arc.End != s.End {
			t.Errorf("arc %d = [%v, %v), want [%v, %v)", i, arc.Start, arc.End, s.Start, s.End)
		}
		if arc.Center != l.Center || arc.Radius != l.Radius {
			t.Errorf("arc %d center/radius = %+v/%v, want %+v/%v", i, arc.Center, arc.Radius, l.Center, l.Radius)
		}
		move := moves[i].(recording.MoveToCommand)
		if move.Point != l.StartPoint(s) {
			t.Errorf("move %d = %+v, want %+v", i, move.Point, l.StartPoint(s))
		}
	}

	for _, c := range rec.Filter(recording.CmdClipStroke) {
		clip := c.(recording.ClipStrokeCommand)
		if clip.Width != 1 || clip.Cap != gg.LineCapRound {
			t.Errorf("ClipStroke = %+v, want width 1 with round caps", clip)
		}
	}
}

func TestRenderSegmentedUsesOneLineWidth(t *testing.T) {
	d := NewDescriptor(WithUnseen(true), WithLineWidths(2.5, 1), WithCounters(4, 2))
	rec := recording.NewRecorder(64, 64)
	Render(rec, d, 1, 54)

	clips := rec.Filter(recording.CmdClipStroke)
	if len(clips) != 2 {
		t.Fatalf("ClipStroke count = %d, want 2", len(clips))
	}
	for i, c := range clips {
		if w := c.(recording.ClipStrokeCommand).Width; w != 2.5 {
			t.Errorf("pass %d width = %v, want 2.5", i, w)
		}
	}
}

func TestRenderSkipsEmptyPass(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		unseen     int
		wantActive bool
	}{
		{"all seen", 4, 0, false},
		{"all unseen", 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriptor(WithCounters(tt.total, tt.unseen))
			rec := recording.NewRecorder(64, 64)
			Render(rec, d, 1, 58)

			f := fills(rec)
			if len(f) != 1 {
				t.Fatalf("fill count = %d, want 1", len(f))
			}
			p := ResolvePalette(d)
			want := p.InactiveStops()
			if tt.wantActive {
				want = p.ActiveStops()
			}
			if !reflect.DeepEqual(f[0].Stops, want) {
				t.Errorf("stops = %+v, want %+v", f[0].Stops, want)
			}
			if n := rec.Count(recording.CmdArc); n != tt.total {
				t.Errorf("arc count = %d, want %d", n, tt.total)
			}
			// One reset for the drawn pass, one at the end.
			if n := rec.Count(recording.CmdResetClip); n != 2 {
				t.Errorf("ResetClip count = %d, want 2", n)
			}
		})
	}
}

func TestRenderFallback(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantActive bool
		wantWidth  float64
	}{
		{"no counters seen", nil, false, 1},
		{"no counters unseen", []Option{WithUnseen(true)}, true, 1.5},
		{"single story", []Option{WithCounters(1, 1), WithUnseen(true)}, true, 1.5},
		{"zero stories", []Option{WithCounters(0, 0)}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriptor(tt.opts...)
			rec := recording.NewRecorder(64, 64)
			if got := Render(rec, d, 1, 58); got != 64 {
				t.Errorf("Render() = %v, want 64", got)
			}

			want := []recording.CommandType{
				recording.CmdClearRect,
				recording.CmdResetClip,
				recording.CmdEllipse,
				recording.CmdClipStroke,
				recording.CmdFillLinearGradient,
				recording.CmdResetClip,
			}
			if types := commandTypes(rec.Commands()); !reflect.DeepEqual(types, want) {
				t.Fatalf("command types = %v, want %v", types, want)
			}

			e := FallbackEllipse(d, 58, 64, 64)
			ellipse := rec.Filter(recording.CmdEllipse)[0].(recording.EllipseCommand)
			if ellipse.Center != e.Center || ellipse.RadiusX != e.RadiusX || ellipse.RadiusY != e.RadiusY {
				t.Errorf("Ellipse = %+v, want %+v", ellipse, e)
			}

			clip := rec.Filter(recording.CmdClipStroke)[0].(recording.ClipStrokeCommand)
			if clip.Width != tt.wantWidth {
				t.Errorf("ClipStroke width = %v, want %v", clip.Width, tt.wantWidth)
			}

			p := ResolvePalette(d)
			wantStops := p.InactiveStops()
			if tt.wantActive {
				wantStops = p.ActiveStops()
			}
			if got := fills(rec)[0].Stops; !reflect.DeepEqual(got, wantStops) {
				t.Errorf("stops = %+v, want %+v", got, wantStops)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	descriptors := []Descriptor{
		NewDescriptor(WithCounters(7, 3), WithCloseFriends(true)),
		NewDescriptor(WithUnseen(true)),
		NewDescriptor(WithCounters(3, 0), WithTheme(DarkTheme())),
	}

	for i, d := range descriptors {
		a := recording.NewRecorder(64, 64)
		b := recording.NewRecorder(64, 64)
		Render(a, d, 0.4, 58)
		Render(b, d, 0.4, 58)
		if !reflect.DeepEqual(a.Commands(), b.Commands()) {
			t.Errorf("descriptor %d: renders differ", i)
		}

		// Rendering again into the same recorder appends the same stream.
		Render(a, d, 0.4, 58)
		n := len(b.Commands())
		if !reflect.DeepEqual(a.Commands()[n:], b.Commands()) {
			t.Errorf("descriptor %d: second render on same canvas differs", i)
		}
	}
}

func TestRenderProgressZeroKeepsSegments(t *testing.T) {
	d := NewDescriptor(WithCounters(3, 1))
	rec := recording.NewRecorder(64, 64)
	Render(rec, d, 0, 58)

	arcs := rec.Filter(recording.CmdArc)
	if len(arcs) != 3 {
		t.Fatalf("arc count = %d, want 3", len(arcs))
	}
	for i := 0; i+1 < len(arcs); i++ {
		a, b := arcs[i].(recording.ArcCommand), arcs[i+1].(recording.ArcCommand)
		if !nearlyEqual(a.End, b.Start, geomEpsilon) {
			t.Errorf("arc %d ends at %v, arc %d starts at %v", i, a.End, i+1, b.Start)
		}
	}
	if n := rec.Count(recording.CmdClipStroke); n != 2 {
		t.Errorf("ClipStroke count = %d, want 2", n)
	}
}

func TestRenderLogsDebugRecord(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Render(recording.NewRecorder(64, 64), NewDescriptor(WithCounters(5, 2)), 1, 58)
	Render(recording.NewRecorder(64, 64), NewDescriptor(), 1, 58)

	out := buf.String()
	for _, want := range []string{"storyring: render segmented", "total=5", "seen=3", "storyring: render fallback"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
