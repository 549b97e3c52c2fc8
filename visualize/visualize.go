// Package visualize renders a tracker's current tracks to a diagnostic PNG
// per frame: green boxes on a dark canvas, labeled with the integer track
// id. Pixel content is never asserted on by tests - only that a frame file
// of the right name and size is produced.
package visualize

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/levicriley/tracking-solution/mot"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
)

var (
	background = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	boxColor   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 0, A: 255}
)

// Render draws tracks onto an 800x600 dark canvas and writes it to
// <dir>/frame_<iiii>.png (four-digit zero-padded index), creating dir if it
// does not already exist.
func Render(dir string, index int, tracks []mot.TrackView) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	for _, tr := range tracks {
		drawRect(img, tr.Rect)
		drawLabel(img, tr)
	}

	path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func scale(rect mot.Rectangle) (x0, y0, x1, y1 int) {
	x0 = int(rect.X * canvasWidth)
	y0 = int(rect.Y * canvasHeight)
	x1 = int((rect.X + rect.Width) * canvasWidth)
	y1 = int((rect.Y + rect.Height) * canvasHeight)
	return
}

func drawRect(img *image.RGBA, rect mot.Rectangle) {
	x0, y0, x1, y1 := scale(rect)
	for x := x0; x <= x1; x++ {
		setIfInBounds(img, x, y0, boxColor)
		setIfInBounds(img, x, y1, boxColor)
	}
	for y := y0; y <= y1; y++ {
		setIfInBounds(img, x0, y, boxColor)
		setIfInBounds(img, x1, y, boxColor)
	}
}

func drawLabel(img *image.RGBA, tr mot.TrackView) {
	x0, y0, _, _ := scale(tr.Rect)
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: labelColor},
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(x0),
			Y: fixed.I(y0 - 2),
		},
	}
	d.DrawString(fmt.Sprintf("%d", tr.ID))
}

func setIfInBounds(img *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}
