// Command zoomview shows an image that can be panned and pinch-zoomed while
// always covering the window.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/zoomview/internal/imagesrc"
	"github.com/elektrokombinacija/zoomview/internal/vis"
	"github.com/elektrokombinacija/zoomview/internal/zoom"
)

func main() {
	path := flag.String("image", "", "Image file to show (png, jpeg, gif, bmp, tiff, webp); empty shows a test pattern")
	maxZoom := flag.Float64("max-zoom", zoom.DefaultMaxScale, "Maximum scale")
	minZoom := flag.Float64("min-zoom", 0, "Minimum scale override (0 = cover fit)")
	anchorFocus := flag.Bool("anchor-focus", false, "Zoom around the gesture focus instead of the top-left corner")
	wheelStep := flag.Float64("wheel-step", 0, "Zoom factor per scroll unit (0 = default)")
	width := flag.Int("width", 900, "Window width in dp")
	height := flag.Int("height", 700, "Window height in dp")
	debug := flag.Bool("debug", false, "Log gesture and zoom transitions to stderr")
	flag.Parse()

	if *debug {
		zoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var img image.Image
	if *path == "" {
		img = imagesrc.Checkerboard(2400, 1600, 80)
	} else {
		var err error
		img, err = imagesrc.LoadImage(*path)
		if err != nil {
			log.Fatal(err)
		}
	}

	application, err := vis.NewApp(img, vis.Options{
		Zoom: zoom.Config{
			MaxScale:      float32(*maxZoom),
			AnchorAtFocus: *anchorFocus,
		},
		MinZoom:   float32(*minZoom),
		WheelStep: float32(*wheelStep),
	})
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("zoomview"),
			app.Size(unit.Dp(*width), unit.Dp(*height)),
		)

		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
