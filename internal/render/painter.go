//go:build ebiten

package render

import (
	"image/color"

	"sparse-life/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter draws the board onto the screen: one staging pixel per cell,
// scaled up to the configured cell size, with boundary lines on top.
type Painter struct {
	cols, rows int
	cell       int
	img        *ebiten.Image
	buf        []byte
	pixel      *ebiten.Image
}

// NewPainter allocates a painter for a cols x rows board drawn at cell
// pixels per side.
func NewPainter(cols, rows, cell int) *Painter {
	if cell <= 0 {
		cell = 1
	}
	p := &Painter{
		cols:  cols,
		rows:  rows,
		cell:  cell,
		buf:   make([]byte, 4*cols*rows),
		img:   ebiten.NewImage(cols, rows),
		pixel: ebiten.NewImage(1, 1),
	}
	p.pixel.Fill(color.White)
	return p
}

// Blit repaints dst: dead background, the living cells yielded by the
// iterator, then the cell boundary lines.
func (p *Painter) Blit(dst *ebiten.Image, each func(func(grid.Cell)), alive, dead, lines color.RGBA) {
	dst.Fill(dead)

	fillRGBA(p.buf, dead)
	each(func(c grid.Cell) {
		setCellRGBA(p.buf, p.cols, c.Col, c.Row, alive)
	})
	p.img.ReplacePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.cell), float64(p.cell))
	dst.DrawImage(p.img, op)

	p.drawBoundaries(dst, lines)
}

// drawBoundaries draws a one-pixel line along the top and left edge of
// every cell row and column.
func (p *Painter) drawBoundaries(dst *ebiten.Image, col color.RGBA) {
	w := float64(p.cols * p.cell)
	h := float64(p.rows * p.cell)
	for row := 0; row < p.rows; row++ {
		p.drawRect(dst, 0, float64(row*p.cell), w, 1, col)
	}
	for c := 0; c < p.cols; c++ {
		p.drawRect(dst, float64(c*p.cell), 0, 1, h, col)
	}
}

// drawRect stretches the 1x1 pixel into an axis-aligned tinted rectangle.
func (p *Painter) drawRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(p.pixel, op)
}
