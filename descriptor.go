package storyring

import (
	"errors"
	"fmt"
)

// Default stroke widths used by FromSubscription and NewDescriptor.
const (
	DefaultActiveLineWidth   = 1.5
	DefaultInactiveLineWidth = 1.0
)

// Errors reported by Descriptor.Validate.
var (
	// ErrInvalidLineWidth is returned when a line width is not positive.
	ErrInvalidLineWidth = errors.New("storyring: invalid line width")

	// ErrInvalidCounters is returned when counters are negative or report
	// more unseen stories than stories in total.
	ErrInvalidCounters = errors.New("storyring: invalid counters")
)

// Counters holds the per-story counts of a ring.
type Counters struct {
	TotalCount  int
	UnseenCount int
}

// SeenCount returns the number of stories already seen.
func (c Counters) SeenCount() int {
	return c.TotalCount - c.UnseenCount
}

// Subscription is the story-subscription record a descriptor is usually
// built from.
type Subscription struct {
	HasUnseen             bool
	HasUnseenCloseFriends bool
	StoryCount            int
	UnseenCount           int
}

// Descriptor describes what a ring should look like. It is an immutable
// value: build a new one for every state change and compare with Equal.
type Descriptor struct {
	hasUnseen             bool
	hasUnseenCloseFriends bool
	theme                 Theme
	activeLineWidth       float64
	inactiveLineWidth     float64
	counters              Counters
	hasCounters           bool
}

// NewDescriptor creates a descriptor with default line widths, a light
// theme and no counters, then applies opts in order.
//
// Example:
//
//	d := storyring.NewDescriptor(
//	    storyring.WithUnseen(true),
//	    storyring.WithCounters(5, 2),
//	)
func NewDescriptor(opts ...Option) Descriptor {
	d := Descriptor{
		theme:             LightTheme(),
		activeLineWidth:   DefaultActiveLineWidth,
		inactiveLineWidth: DefaultInactiveLineWidth,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// FromSubscription builds the descriptor for a story subscription using the
// default line widths.
func FromSubscription(s Subscription, theme Theme) Descriptor {
	return NewDescriptor(
		WithUnseen(s.HasUnseen),
		WithCloseFriends(s.HasUnseenCloseFriends),
		WithTheme(theme),
		WithCounters(s.StoryCount, s.UnseenCount),
	)
}

// HasUnseen reports whether the ring shows the active state.
func (d Descriptor) HasUnseen() bool { return d.hasUnseen }

// HasUnseenCloseFriends reports whether the close-friends palette is used.
func (d Descriptor) HasUnseenCloseFriends() bool { return d.hasUnseenCloseFriends }

// Theme returns the theme inputs.
func (d Descriptor) Theme() Theme { return d.theme }

// ActiveLineWidth returns the stroke width for the unseen state.
func (d Descriptor) ActiveLineWidth() float64 { return d.activeLineWidth }

// InactiveLineWidth returns the stroke width for the seen state.
func (d Descriptor) InactiveLineWidth() float64 { return d.inactiveLineWidth }

// Counters returns the story counters and whether they are present.
func (d Descriptor) Counters() (Counters, bool) {
	return d.counters, d.hasCounters
}

// LineWidth returns the stroke width of a render: the active width when the
// descriptor has unseen stories, the inactive width otherwise. Seen and
// unseen segments of one render share it.
func (d Descriptor) LineWidth() float64 {
	if d.hasUnseen {
		return d.activeLineWidth
	}
	return d.inactiveLineWidth
}

// Segmented reports whether the ring is drawn as one arc per story.
// Without counters, or with at most one story, a single ring is drawn.
func (d Descriptor) Segmented() bool {
	return d.hasCounters && d.counters.TotalCount > 1
}

// Equal reports whether two descriptors draw the same ring.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.hasUnseen != other.hasUnseen {
		return false
	}
	if d.hasUnseenCloseFriends != other.hasUnseenCloseFriends {
		return false
	}
	if !d.theme.Equal(other.theme) {
		return false
	}
	if d.activeLineWidth != other.activeLineWidth {
		return false
	}
	if d.inactiveLineWidth != other.inactiveLineWidth {
		return false
	}
	if d.hasCounters != other.hasCounters {
		return false
	}
	return !d.hasCounters || d.counters == other.counters
}

// Validate checks the descriptor against the renderer's input contract.
// Render itself trusts its input; Validate is for front ends that accept
// untrusted values.
func (d Descriptor) Validate() error {
	if !(d.activeLineWidth > 0) {
		return fmt.Errorf("active width %v: %w", d.activeLineWidth, ErrInvalidLineWidth)
	}
	if !(d.inactiveLineWidth > 0) {
		return fmt.Errorf("inactive width %v: %w", d.inactiveLineWidth, ErrInvalidLineWidth)
	}
	if !d.hasCounters {
		return nil
	}
	c := d.counters
	if c.TotalCount < 0 || c.UnseenCount < 0 || c.UnseenCount > c.TotalCount {
		return fmt.Errorf("total=%d unseen=%d: %w", c.TotalCount, c.UnseenCount, ErrInvalidCounters)
	}
	return nil
}
