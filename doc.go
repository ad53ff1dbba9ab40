// Package storyring draws the story ring shown around user avatars.
//
// # Overview
//
// A ring is a stroked circle around an avatar. With per-story counters it is
// split into evenly spaced arc segments, one per story: seen stories are
// filled with the inactive gradient, unseen stories with the active one.
// Without counters, or with a single story, a plain ring is drawn instead.
//
// # Quick Start
//
//	import "github.com/gogpu/storyring"
//
//	d := storyring.FromSubscription(storyring.Subscription{
//	    HasUnseen:   true,
//	    StoryCount:  5,
//	    UnseenCount: 2,
//	}, storyring.LightTheme())
//
//	dc := storyring.Draw(d, storyring.DefaultProgress, 58)
//	_ = dc.SavePNG("ring.png")
//
// # Rendering Model
//
// Render never strokes with a solid color. Each group of segments is turned
// into a stroked outline, used as a clip, and a vertical linear gradient
// spanning the whole canvas is filled through it. Segments near the top and
// bottom therefore sample different colors of the same gradient.
//
// Render targets the Canvas interface. The ggcanvas package rasterises into
// a gg.Context; the recording package captures the commands.
//
// # Coordinate System
//
// Canvas coordinates follow gg:
//   - Origin (0,0) at top-left
//   - Y increases down
//   - Angle -π/2 is 12 o'clock and segments run clockwise by index
//
// # Progress
//
// progress in [0, 1] scales the gap between segments from 0 (segments touch)
// to 3 canvas units. Animation drivers supply it per frame.
package storyring
