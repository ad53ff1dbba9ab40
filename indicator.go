package storyring

// Indicator keeps the last ring state handed to a view so the ring can be
// redrawn on demand, for example when the host asks for display.
//
// The zero value is ready to use and has nothing to draw.
//
// Indicator is NOT safe for concurrent use.
type Indicator struct {
	descriptor        Descriptor
	availableDiameter float64
	progress          float64
	hasState          bool
	needsDisplay      bool
}

// Update stores a new state and returns the frame size the host should give
// the indicator: the image diameter, which is larger than availableDiameter
// by the ring's inset. It does not echo availableDiameter back. The
// indicator is marked for display only when the state changed.
func (ind *Indicator) Update(d Descriptor, availableDiameter, progress float64) float64 {
	changed := !ind.hasState ||
		!ind.descriptor.Equal(d) ||
		ind.availableDiameter != availableDiameter ||
		ind.progress != progress

	ind.descriptor = d
	ind.availableDiameter = availableDiameter
	ind.progress = progress
	ind.hasState = true
	if changed {
		ind.needsDisplay = true
	}
	return ImageDiameter(d, availableDiameter)
}

// NeedsDisplay reports whether the stored state has not been drawn yet.
func (ind *Indicator) NeedsDisplay() bool {
	return ind.needsDisplay
}

// SetNeedsDisplay forces the next Draw to be reported as needed, for example
// after the host discarded its backing store.
func (ind *Indicator) SetNeedsDisplay() {
	if ind.hasState {
		ind.needsDisplay = true
	}
}

// Draw renders the last state into cv and clears the display flag. It
// reports false, drawing nothing, when no state was ever stored.
func (ind *Indicator) Draw(cv Canvas) bool {
	if !ind.hasState {
		return false
	}
	Render(cv, ind.descriptor, ind.progress, ind.availableDiameter)
	ind.needsDisplay = false
	return true
}

// Descriptor returns the last stored descriptor and whether one exists.
func (ind *Indicator) Descriptor() (Descriptor, bool) {
	return ind.descriptor, ind.hasState
}
