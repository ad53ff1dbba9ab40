package storyring

import "github.com/gogpu/gg"

// Theme carries the theme inputs the ring needs to resolve its inactive
// color. Resolving a full presentation theme is the caller's job; only the
// dark flag and the resolved gray icon color reach the renderer.
type Theme struct {
	// Dark selects the dark-theme inactive color.
	Dark bool

	// GrayIcon is the theme's gray icon color. In dark themes the inactive
	// ring uses it at 50% alpha.
	GrayIcon gg.RGBA
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	return Theme{Dark: false, GrayIcon: rgb(0x9E9AA1)}
}

// DarkTheme returns a dark theme.
func DarkTheme() Theme {
	return Theme{Dark: true, GrayIcon: rgb(0x8E8E93)}
}

// Equal reports whether two themes resolve to the same ring colors.
func (t Theme) Equal(other Theme) bool {
	return t == other
}

// rgb converts a 0xRRGGBB literal into an opaque color.
func rgb(v uint32) gg.RGBA {
	return gg.RGB(
		float64((v>>16)&0xFF)/255,
		float64((v>>8)&0xFF)/255,
		float64(v&0xFF)/255,
	)
}
