package storyring

// Option configures a Descriptor during creation.
//
// Example:
//
//	d := storyring.NewDescriptor(
//	    storyring.WithTheme(storyring.DarkTheme()),
//	    storyring.WithLineWidths(2, 1),
//	)
type Option func(*Descriptor)

// WithUnseen sets whether the ring shows the active (unseen) state.
func WithUnseen(unseen bool) Option {
	return func(d *Descriptor) {
		d.hasUnseen = unseen
	}
}

// WithCloseFriends selects the close-friends active palette.
func WithCloseFriends(closeFriends bool) Option {
	return func(d *Descriptor) {
		d.hasUnseenCloseFriends = closeFriends
	}
}

// WithTheme sets the theme inputs used for the inactive color.
func WithTheme(theme Theme) Option {
	return func(d *Descriptor) {
		d.theme = theme
	}
}

// WithLineWidths sets the active and inactive stroke widths.
func WithLineWidths(active, inactive float64) Option {
	return func(d *Descriptor) {
		d.activeLineWidth = active
		d.inactiveLineWidth = inactive
	}
}

// WithCounters attaches per-story counters. With more than one story the
// ring is drawn as one segment per story.
func WithCounters(total, unseen int) Option {
	return func(d *Descriptor) {
		d.counters = Counters{TotalCount: total, UnseenCount: unseen}
		d.hasCounters = true
	}
}

// WithoutCounters removes any counters, forcing the single-ring fallback.
func WithoutCounters() Option {
	return func(d *Descriptor) {
		d.counters = Counters{}
		d.hasCounters = false
	}
}
