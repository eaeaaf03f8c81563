//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status block and key reference on top of the board.
// It starts hidden; the H key toggles it.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Visible reports whether the overlay is currently shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the status block and the key reference when visible.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if !o.visible {
		return
	}

	lines := s.Lines()
	lines = append(lines, "")
	lines = append(lines, HelpLines()...)

	const margin, pad = 8, 10
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil() + 2

	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	panelW := width + 2*pad
	panelH := len(lines)*lineH + 2*pad

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.GeoM.Translate(margin, margin)
	op.ColorM.Scale(0, 0, 0, 0.72)
	screen.DrawImage(o.pixel, op)

	y := margin + pad + face.Metrics().Ascent.Ceil()
	for _, l := range lines {
		text.Draw(screen, l, face, margin+pad, y, color.White)
		y += lineH
	}
}
