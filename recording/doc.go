// Package recording captures story ring drawing operations as typed
// commands.
//
// A Recorder implements the storyring canvas contract without touching any
// pixels. Every call is stored as a command struct so renders can be
// inspected, compared and replayed onto another canvas.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(64, 64)
//	storyring.Render(rec, d, 1, 58)
//
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// Playback replays the commands onto any Target, for example a raster
// canvas:
//
//	cv, _ := ggcanvas.NewSized(64, 64)
//	rec.Playback(cv)
//
// Commands are plain values: two renders of the same input produce command
// slices that are equal under reflect.DeepEqual.
package recording
