// optotype - a Landolt-C visual acuity stimulus engine
// Copyright (C) 2026  The optotype authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package optotype

import (
	"image"
	"image/color"
)

// RGB is one opaque pixel in the frame's channel order.
type RGB struct {
	R, G, B uint8
}

// rgba converts to the stdlib color type with full alpha.
func (c RGB) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Frame is the output raster buffer: Width×Height pixels, three 8-bit
// channels in RGB order, row-major with a stride of 3·Width. The caller
// owns the frame after a render returns; the engine keeps no reference.
//
// Frame implements image.Image and draw.Image so it can be written as PNG
// and targeted by font rasterisation directly.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame allocates a zeroed (black) frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c RGB) {
	for i := 0; i < len(f.Pix); i += 3 {
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
	}
}

// RGBAt returns the pixel at (x, y). Out-of-bounds coordinates return the
// zero value.
func (f *Frame) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return RGB{}
	}
	i := (y*f.Width + x) * 3
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Frame) At(x, y int) color.Color {
	return f.RGBAt(x, y).rgba()
}

// Set implements draw.Image.
func (f *Frame) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	r := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*f.Width + x) * 3
	f.Pix[i] = r.R
	f.Pix[i+1] = r.G
	f.Pix[i+2] = r.B
}

// blendSpan composites a coverage row into the frame: each destination
// pixel moves toward c in proportion to its coverage. This is the emit
// target for the rasterizer.
func (f *Frame) blendSpan(y, xMin int, coverage []float32, c RGB) {
	if y < 0 || y >= f.Height {
		return
	}
	for i, cov := range coverage {
		x := xMin + i
		if x < 0 || x >= f.Width {
			continue
		}
		if cov <= 0 {
			continue
		}
		if cov > 1 {
			cov = 1
		}
		p := (y*f.Width + x) * 3
		f.Pix[p] = blendChannel(f.Pix[p], c.R, cov)
		f.Pix[p+1] = blendChannel(f.Pix[p+1], c.G, cov)
		f.Pix[p+2] = blendChannel(f.Pix[p+2], c.B, cov)
	}
}

func blendChannel(dst, src uint8, cov float32) uint8 {
	v := float32(dst) + (float32(src)-float32(dst))*cov
	return uint8(v + 0.5)
}
