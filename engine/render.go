package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/mcts"
)

const cellPx = 24

// Printhook renders a single point's ownership character to w, using
// 'X'/'O'/':'/',' for black/white/dame/unclear, uppercase when the
// strict 0.8 threshold classified it and lowercase when only the
// relaxed 0.67 threshold did (spec.md §6 printhook).
func Printhook(w io.Writer, m *mcts.OwnerMap, pt int) {
	const strict = 0.8
	const relaxed = 0.67

	switch {
	case m.Confident(pt, board.Black, strict, 0):
		fmt.Fprint(w, "X")
	case m.Confident(pt, board.White, strict, 0):
		fmt.Fprint(w, "O")
	case m.Confident(pt, board.Black, relaxed, 0):
		fmt.Fprint(w, "x")
	case m.Confident(pt, board.White, relaxed, 0):
		fmt.Fprint(w, "o")
	case m.BlackShare(pt) < 1-strict && m.WhiteShare(pt) < 1-strict:
		fmt.Fprint(w, ":")
	default:
		fmt.Fprint(w, ",")
	}
}

// RenderOwnerMap draws a size x size heatmap PNG: cells shaded by
// black/white ownership share, with the playout count captioned along
// the bottom edge. Grounded on the teacher's go.mod pull of
// golang.org/x/image for rendered diagnostics; github.com/golang/freetype
// itself needs an embeddable TrueType outline this repo has no
// business vendoring, so captions use the bundled basicfont bitmap
// face via a font.Drawer instead (see DESIGN.md).
func RenderOwnerMap(w io.Writer, m *mcts.OwnerMap, size int) error {
	const caption = cellPx
	img := image.NewRGBA(image.Rect(0, 0, size*cellPx, size*cellPx+caption))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{0xde, 0xb8, 0x87, 0xff}}, image.Point{}, draw.Src)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pt := y*size + x
			c := cellColor(m.BlackShare(pt), m.WhiteShare(pt))
			rect := image.Rect(x*cellPx, y*cellPx, (x+1)*cellPx, (y+1)*cellPx)
			draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, size*cellPx+caption-6),
	}
	d.DrawString(fmt.Sprintf("playouts %d", m.Playouts()))

	return png.Encode(w, img)
}

// cellColor blends black toward dark gray and white toward near-white
// proportional to ownership share, leaving undecided cells at a
// neutral mid-gray.
func cellColor(black, white float64) color.RGBA {
	const base = 128
	switch {
	case black > white:
		shade := uint8(base - 110*black)
		return color.RGBA{shade, shade, shade, 0xff}
	case white > black:
		shade := uint8(base + 110*white)
		return color.RGBA{shade, shade, shade, 0xff}
	default:
		return color.RGBA{base, base, base, 0xff}
	}
}
