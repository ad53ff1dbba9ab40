// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrInvalidDimensions is returned when width or height is not positive.
var ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

// Canvas draws story rings into a gg.Context.
type Canvas struct {
	dc      *gg.Context
	scratch *gg.Context // holds the current path; stroked to build clip masks
	clip    *gg.Mask    // nil means unclipped
	err     error
}

// New creates a Canvas drawing into dc. The context's transform is not
// applied: ring coordinates are pixel coordinates of dc.
//
// dc may be resized between renders; the canvas follows its current size.
func New(dc *gg.Context) *Canvas {
	return &Canvas{
		dc:      dc,
		scratch: gg.NewContext(dc.Width(), dc.Height()),
	}
}

// NewSized creates a Canvas backed by a new context of the given size.
func NewSized(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return New(gg.NewContext(width, height)), nil
}

// Context returns the drawing context the canvas renders into.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Clip returns the current clip mask, or nil when the canvas is unclipped.
func (c *Canvas) Clip() *gg.Mask {
	return c.clip
}

// Err returns the first stroking error, if any. Once set, later clips are
// still computed from whatever coverage the stroker produced.
func (c *Canvas) Err() error {
	return c.err
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// ClearRect sets the pixels covered by the rectangle to transparent. The
// clip does not apply.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	pm := c.dc.ResizeTarget()
	x0, y0, x1, y1 := pixelBounds(x, y, w, h, pm.Width(), pm.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			pm.SetPixel(px, py, gg.Transparent)
		}
	}
}

// ResetClip removes the clip.
func (c *Canvas) ResetClip() {
	c.clip = nil
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.syncScratch()
	c.scratch.MoveTo(x, y)
}

// Arc appends a circular arc from angle1 to angle2. gg would wrap a
// backwards sweep into a near full circle, so a non-positive sweep appends
// nothing.
func (c *Canvas) Arc(cx, cy, r, angle1, angle2 float64) {
	if !(angle2 > angle1) {
		return
	}
	c.syncScratch()
	c.scratch.DrawArc(cx, cy, r, angle1, angle2)
}

// Ellipse appends a closed ellipse.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	c.syncScratch()
	c.scratch.DrawEllipse(cx, cy, rx, ry)
}

// ClipStroke strokes the current path into a coverage mask and intersects
// the clip with it. The path is cleared. A clip built before dc was resized
// is dropped rather than intersected.
func (c *Canvas) ClipStroke(width float64, lineCap gg.LineCap) {
	c.syncScratch()
	s := c.scratch
	s.Clear()
	s.SetRGBA(1, 1, 1, 1)
	s.SetLineWidth(width)
	s.SetLineCap(lineCap)
	s.SetLineJoin(gg.LineJoinRound)
	if err := s.Stroke(); err != nil && c.err == nil {
		c.err = fmt.Errorf("ggcanvas: stroke clip path: %w", err)
	}

	mask := coverageMask(s.ResizeTarget())
	if c.clip == nil || !sameSize(c.clip, mask) {
		c.clip = mask
		return
	}
	intersect(c.clip, mask)
}

// syncScratch reallocates the scratch context when dc changed size. Any
// path under construction is lost, so hosts resize between renders.
func (c *Canvas) syncScratch() {
	if c.scratch.Width() == c.dc.Width() && c.scratch.Height() == c.dc.Height() {
		return
	}
	c.scratch = gg.NewContext(c.dc.Width(), c.dc.Height())
}

// coverageMask copies the alpha channel of pm into a new mask.
func coverageMask(pm *gg.Pixmap) *gg.Mask {
	mask := gg.NewMask(pm.Width(), pm.Height())
	dst, src := mask.Data(), pm.Data()
	for i := range dst {
		dst[i] = src[i*4+3]
	}
	return mask
}

func sameSize(a, b *gg.Mask) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

// FillLinearGradient composites a linear gradient over the whole canvas
// through the clip.
func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []gg.ColorStop) {
	brush := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, s := range stops {
		brush.AddColorStop(s.Offset, s.Color)
	}

	pm := c.dc.ResizeTarget()
	for py := 0; py < pm.Height(); py++ {
		for px := 0; px < pm.Width(); px++ {
			coverage := uint8(255)
			if c.clip != nil {
				coverage = c.clip.At(px, py)
			}
			if coverage == 0 {
				continue
			}
			src := brush.ColorAt(float64(px)+0.5, float64(py)+0.5)
			pm.SetPixel(px, py, sourceOver(src, pm.GetPixel(px, py), coverage))
		}
	}
}

// intersect multiplies dst's coverage by src's, pixel by pixel.
func intersect(dst, src *gg.Mask) {
	d, s := dst.Data(), src.Data()
	for i := range d {
		if i >= len(s) {
			d[i] = 0
			continue
		}
		d[i] = uint8(uint16(d[i]) * uint16(s[i]) / 255)
	}
}

// sourceOver blends straight-alpha src over dst with the given coverage,
// matching gg's software renderer.
func sourceOver(src, dst gg.RGBA, coverage uint8) gg.RGBA {
	srcAlpha := src.A * float64(coverage) / 255
	inv := 1 - srcAlpha

	outA := srcAlpha + dst.A*inv
	if outA <= 0 {
		return gg.Transparent
	}
	return gg.RGBA{
		R: (src.R*srcAlpha + dst.R*dst.A*inv) / outA,
		G: (src.G*srcAlpha + dst.G*dst.A*inv) / outA,
		B: (src.B*srcAlpha + dst.B*dst.A*inv) / outA,
		A: outA,
	}
}

// pixelBounds converts a float rectangle into clamped pixel bounds.
func pixelBounds(x, y, w, h float64, width, height int) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(x), 0, width)
	y0 = clampInt(int(y), 0, height)
	x1 = clampInt(int(x+w+0.999999), 0, width)
	y1 = clampInt(int(y+h+0.999999), 0, height)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
