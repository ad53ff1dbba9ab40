package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/storyring"
)

// Sheet defaults.
const (
	defaultAvailable = 58.0
	defaultColumns   = 4
	defaultPadding   = 8
)

var errEmptySheet = errors.New("ringdemo: sheet has no rings")

// Sheet is a grid of ring states rendered side by side.
type Sheet struct {
	// Available is the avatar diameter shared by every ring.
	Available float64 `yaml:"available"`
	// Columns is the number of rings per row.
	Columns int `yaml:"columns"`
	// Padding is the gap around each cell in pixels. Zero selects the
	// default, a negative value disables it.
	Padding int     `yaml:"padding"`
	Rings   []Entry `yaml:"rings"`
}

// Entry describes one ring state. A nil Total draws the fallback ring.
type Entry struct {
	Total         *int     `yaml:"total"`
	Unseen        int      `yaml:"unseen"`
	HasUnseen     bool     `yaml:"has_unseen"`
	CloseFriends  bool     `yaml:"close_friends"`
	Dark          bool     `yaml:"dark"`
	Progress      *float64 `yaml:"progress"`
	ActiveWidth   float64  `yaml:"active_width"`
	InactiveWidth float64  `yaml:"inactive_width"`
}

// LoadSheet reads a sheet from a YAML file.
func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseSheet(f)
}

// ParseSheet decodes a sheet and fills in defaults.
func ParseSheet(r io.Reader) (*Sheet, error) {
	var s Sheet
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("ringdemo: decode sheet: %w", err)
	}
	if len(s.Rings) == 0 {
		return nil, errEmptySheet
	}
	if s.Available <= 0 {
		s.Available = defaultAvailable
	}
	if s.Columns <= 0 {
		s.Columns = defaultColumns
	}
	if s.Padding < 0 {
		s.Padding = 0
	} else if s.Padding == 0 {
		s.Padding = defaultPadding
	}
	return &s, nil
}

// Descriptor converts the entry into a validated ring descriptor.
func (e Entry) Descriptor() (storyring.Descriptor, error) {
	theme := storyring.LightTheme()
	if e.Dark {
		theme = storyring.DarkTheme()
	}

	active, inactive := e.ActiveWidth, e.InactiveWidth
	if active == 0 {
		active = storyring.DefaultActiveLineWidth
	}
	if inactive == 0 {
		inactive = storyring.DefaultInactiveLineWidth
	}

	opts := []storyring.Option{
		storyring.WithUnseen(e.HasUnseen),
		storyring.WithCloseFriends(e.CloseFriends),
		storyring.WithTheme(theme),
		storyring.WithLineWidths(active, inactive),
	}
	if e.Total != nil {
		opts = append(opts, storyring.WithCounters(*e.Total, e.Unseen))
	}

	d := storyring.NewDescriptor(opts...)
	if err := d.Validate(); err != nil {
		return storyring.Descriptor{}, err
	}
	return d, nil
}

func (e Entry) progress() float64 {
	if e.Progress == nil {
		return storyring.DefaultProgress
	}
	return *e.Progress
}

// Render draws every ring into one image, row by row.
func (s *Sheet) Render() (*image.RGBA, error) {
	descriptors := make([]storyring.Descriptor, len(s.Rings))
	cell := 0
	for i, e := range s.Rings {
		d, err := e.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		descriptors[i] = d
		side := int(math.Ceil(storyring.ImageDiameter(d, s.Available)))
		cell = max(cell, side)
	}
	cell += 2 * s.Padding

	cols := min(s.Columns, len(s.Rings))
	rows := (len(s.Rings) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	for i, d := range descriptors {
		ring := storyring.Draw(d, s.Rings[i].progress(), s.Available).Image()
		b := ring.Bounds()

		x := (i%cols)*cell + (cell-b.Dx())/2
		y := (i/cols)*cell + (cell-b.Dy())/2
		dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
		draw.Draw(sheet, dst, ring, b.Min, draw.Over)
	}
	return sheet, nil
}

// Zoom upscales img by an integer factor. Factors below 2 return img as is.
func Zoom(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
