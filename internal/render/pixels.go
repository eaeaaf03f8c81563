package render

import "image/color"

// fillRGBA floods the staging buffer with one color.
func fillRGBA(buf []byte, c color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// setCellRGBA paints the staging pixel for one board cell. Coordinates
// outside the buffer are ignored.
func setCellRGBA(buf []byte, cols, col, row int, c color.RGBA) {
	if cols <= 0 || col < 0 || row < 0 || col >= cols {
		return
	}
	base := (row*cols + col) * 4
	if base+3 >= len(buf) {
		return
	}
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
