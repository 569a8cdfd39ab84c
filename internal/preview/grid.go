package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/roadcal/internal/geometry"
)

var (
	gridColor  = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelBg    = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
)

// GridOverlay draws grid lines every spacing SVG units and labels each
// crossing with its SVG coordinates. origin is the SVG point at pixel (0,0).
func GridOverlay(img *image.NRGBA, spacing int, origin geometry.Point, c color.NRGBA) {
	if spacing <= 0 {
		return
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	step := float64(spacing)

	firstX := int(math.Ceil(origin.X/step)*step - origin.X)
	firstY := int(math.Ceil(origin.Y/step)*step - origin.Y)

	// Vertical lines
	for x := firstX; x < width; x += spacing {
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	// Horizontal lines
	for y := firstY; y < height; y += spacing {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	for y := firstY; y < height; y += spacing {
		for x := firstX; x < width; x += spacing {
			label := fmt.Sprintf("%d,%d", x+int(origin.X), y+int(origin.Y))
			drawLabel(img, x+2, y+2, label, labelColor, labelBg)
		}
	}
}

// Simple 3x5 pixel font for the characters a coordinate label can hold.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
	'-': {"000", "000", "111", "000", "000"},
}

// drawLabel draws text at (x, y) on a filled background box.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	set := func(px, py int, c color.NRGBA) {
		if image.Pt(px, py).In(bounds) {
			img.SetNRGBA(px, py, c)
		}
	}

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					set(cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
