// Package imagesrc loads images for display and generates test patterns.
package imagesrc

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%s image %s is empty", format, path)
	}
	return img, nil
}

// Checkerboard returns a w x h test pattern with square cells of the given
// size and a gradient so panning is easy to follow.
func Checkerboard(w, h, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(x * 255 / w)
			g := uint8(y * 255 / h)
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: 200, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: r / 2, G: g / 2, B: 60, A: 255})
			}
		}
	}
	return img
}
