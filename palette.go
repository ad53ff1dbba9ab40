package storyring

import "github.com/gogpu/gg"

// Active gradient colors, top to bottom.
var (
	closeFriendsTop    = rgb(0x7CD636)
	closeFriendsBottom = rgb(0x26B470)
	unseenTop          = rgb(0x34C76F)
	unseenBottom       = rgb(0x3DA1FD)
	lightInactive      = rgb(0xD8D8E1)
)

// inactiveAlpha is the alpha applied to the gray icon color in dark themes.
const inactiveAlpha = 0.5

// Palette holds the two-stop gradients a ring is filled with.
type Palette struct {
	Active   [2]gg.RGBA
	Inactive [2]gg.RGBA
}

// ResolvePalette resolves the gradient colors for d. The active colors depend
// only on the close-friends flag; the inactive colors only on the theme.
func ResolvePalette(d Descriptor) Palette {
	var p Palette
	if d.hasUnseenCloseFriends {
		p.Active = [2]gg.RGBA{closeFriendsTop, closeFriendsBottom}
	} else {
		p.Active = [2]gg.RGBA{unseenTop, unseenBottom}
	}

	if d.theme.Dark {
		gray := d.theme.GrayIcon
		gray.A = inactiveAlpha
		p.Inactive = [2]gg.RGBA{gray, gray}
	} else {
		p.Inactive = [2]gg.RGBA{lightInactive, lightInactive}
	}
	return p
}

// ActiveStops returns the active gradient as color stops at offsets 0 and 1.
func (p Palette) ActiveStops() []gg.ColorStop {
	return stops(p.Active)
}

// InactiveStops returns the inactive gradient as color stops at offsets 0 and 1.
func (p Palette) InactiveStops() []gg.ColorStop {
	return stops(p.Inactive)
}

func stops(c [2]gg.RGBA) []gg.ColorStop {
	return []gg.ColorStop{
		{Offset: 0, Color: c[0]},
		{Offset: 1, Color: c[1]},
	}
}
