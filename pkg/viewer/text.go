package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// labelUnits is the height of the label glyphs before the node scale is applied
	labelUnits = 13.0
	minLabelPx = 7.0
	maxLabelPx = 200.0
)

var labelFace = basicfont.Face7x13

// rasterizeText renders text at the face's native size on a transparent background
func rasterizeText(text string, col color.RGBA) *image.RGBA {
	metrics := labelFace.Metrics()
	width := font.MeasureString(labelFace, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(text)
	return img
}

// drawLabel draws text with its baseline-left corner at (x, y), scaled to pixelHeight
func drawLabel(dst *image.RGBA, text string, x, y, pixelHeight float64, col color.RGBA) image.Rectangle {
	if text == "" {
		return image.Rectangle{}
	}

	src := rasterizeText(text, col)
	size := src.Bounds().Size()

	pixelHeight = math.Max(minLabelPx, math.Min(maxLabelPx, pixelHeight))
	factor := pixelHeight / float64(size.Y)
	w := int(math.Round(float64(size.X) * factor))
	h := int(math.Round(pixelHeight))

	target := image.Rect(int(x), int(y)-h, int(x)+w, int(y))
	xdraw.ApproxBiLinear.Scale(dst, target, src, src.Bounds(), draw.Over, nil)
	return target.Intersect(dst.Bounds())
}
