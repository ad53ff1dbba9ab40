// Command ringdemo renders story rings to PNG.
//
// Single ring:
//
//	ringdemo --total 5 --unseen 2 --output ring.png
//
// Contact sheet of several states described in a YAML file:
//
//	ringdemo --sheet states.yaml --zoom 4 --output sheet.png
package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gogpu/storyring"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("ringdemo: %v", err)
	}
}

// options holds the command line configuration.
type options struct {
	Available     float64
	Total         int
	Unseen        int
	HasUnseen     bool
	CloseFriends  bool
	Dark          bool
	Progress      float64
	ActiveWidth   float64
	InactiveWidth float64
	Sheet         string
	Zoom          int
	Output        string
	Verbose       bool
}

// Flags returns the CLI flags bound to o.
func (o *options) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:        "size",
			Usage:       "avatar diameter the ring surrounds",
			Category:    "Ring",
			Value:       58,
			Destination: &o.Available,
		},
		&cli.IntFlag{
			Name:        "total",
			Usage:       "story count; 0 draws the single-ring fallback",
			Category:    "Ring",
			Destination: &o.Total,
		},
		&cli.IntFlag{
			Name:        "unseen",
			Usage:       "unseen story count",
			Category:    "Ring",
			Destination: &o.Unseen,
		},
		&cli.BoolFlag{
			Name:        "has-unseen",
			Usage:       "draw the active state (implied by --unseen > 0)",
			Category:    "Ring",
			Destination: &o.HasUnseen,
		},
		&cli.BoolFlag{
			Name:        "close-friends",
			Usage:       "use the close-friends palette",
			Category:    "Ring",
			Destination: &o.CloseFriends,
		},
		&cli.BoolFlag{
			Name:        "dark",
			Usage:       "use the dark theme",
			Category:    "Ring",
			Destination: &o.Dark,
		},
		&cli.Float64Flag{
			Name:        "progress",
			Usage:       "segment spacing progress in [0,1]",
			Category:    "Ring",
			Value:       storyring.DefaultProgress,
			Destination: &o.Progress,
		},
		&cli.Float64Flag{
			Name:        "active-width",
			Usage:       "active line width",
			Category:    "Ring",
			Value:       storyring.DefaultActiveLineWidth,
			Destination: &o.ActiveWidth,
		},
		&cli.Float64Flag{
			Name:        "inactive-width",
			Usage:       "inactive line width",
			Category:    "Ring",
			Value:       storyring.DefaultInactiveLineWidth,
			Destination: &o.InactiveWidth,
		},
		&cli.StringFlag{
			Name:        "sheet",
			Usage:       "YAML file describing a contact sheet of rings",
			Category:    "Output",
			Destination: &o.Sheet,
		},
		&cli.IntFlag{
			Name:        "zoom",
			Usage:       "integer upscale factor for the output image",
			Category:    "Output",
			Value:       1,
			Destination: &o.Zoom,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output file",
			Category:    "Output",
			Value:       "ring.png",
			Destination: &o.Output,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "log render details to stderr",
			Destination: &o.Verbose,
		},
	}
}

// entry converts the single-ring flags into a sheet entry.
func (o *options) entry() Entry {
	e := Entry{
		HasUnseen:     o.HasUnseen || o.Unseen > 0,
		CloseFriends:  o.CloseFriends,
		Dark:          o.Dark,
		Progress:      &o.Progress,
		ActiveWidth:   o.ActiveWidth,
		InactiveWidth: o.InactiveWidth,
	}
	if o.Total > 0 {
		e.Total = &o.Total
		e.Unseen = o.Unseen
	}
	return e
}

func newCommand() *cli.Command {
	var o options

	return &cli.Command{
		Name:  "ringdemo",
		Usage: "Render story rings to PNG",
		Flags: o.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if o.Verbose {
				storyring.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			img, err := o.render()
			if err != nil {
				return err
			}

			img = Zoom(img, o.Zoom)
			if err := WritePNG(o.Output, img); err != nil {
				return fmt.Errorf("save %s: %w", o.Output, err)
			}

			log.Printf("Ring saved to %s (%dx%d)\n", o.Output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
}

// render draws the sheet when one is given, a single ring otherwise.
func (o *options) render() (image.Image, error) {
	if o.Sheet != "" {
		sheet, err := LoadSheet(o.Sheet)
		if err != nil {
			return nil, fmt.Errorf("load sheet: %w", err)
		}
		img, err := sheet.Render()
		if err != nil {
			return nil, fmt.Errorf("render sheet: %w", err)
		}
		return img, nil
	}

	e := o.entry()
	d, err := e.Descriptor()
	if err != nil {
		return nil, fmt.Errorf("invalid ring: %w", err)
	}
	return storyring.Draw(d, e.progress(), o.Available).Image(), nil
}
