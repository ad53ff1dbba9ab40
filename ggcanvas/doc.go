// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas rasterises story rings into a gg drawing context.
//
// Canvas implements storyring.Canvas on top of a *gg.Context:
//
//	path (MoveTo/Arc/Ellipse) -> gg stroker -> alpha Mask (clip)
//	clip + LinearGradientBrush -> source-over into the context pixmap
//
// The current path is built in a private scratch context. ClipStroke strokes
// it with gg's stroker, reads the stroke coverage back as a gg.Mask and
// intersects it with the current clip. FillLinearGradient evaluates the
// gradient for every pixel of the canvas and composites it through the clip.
//
// # Usage
//
//	cv, err := ggcanvas.NewSized(64, 64)
//	if err != nil {
//	    return err
//	}
//	storyring.Render(cv, d, 1, 58)
//	_ = cv.Context().SavePNG("ring.png")
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine.
package ggcanvas
