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

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/acuitylab/optotype"
)

// RenderFrame converts a rendered frame into a terminal preview. Each
// character cell shows two vertically stacked pixels using the upper
// half block, the foreground carrying the top pixel and the background
// the bottom one. The frame is downsampled by area averaging to fit
// within maxCols by maxRows cells while preserving aspect ratio: a
// terminal cell is roughly twice as tall as wide, so two frame rows per
// cell keeps circles round.
func RenderFrame(f *optotype.Frame, maxCols, maxRows int) string {
	return RenderFrameRegion(f, 0, 0, f.Width, f.Height, maxCols, maxRows)
}

// RenderFrameRegion renders only the frame rectangle [x0,x1)×[y0,y1),
// magnifying it to the available cells. Used by the zoom toggle to
// inspect the optotype up close.
func RenderFrameRegion(f *optotype.Frame, x0, y0, x1, y1, maxCols, maxRows int) string {
	w := x1 - x0
	h := y1 - y0
	if maxCols < 1 || maxRows < 1 || w < 1 || h < 1 {
		return ""
	}

	cols := maxCols
	rows := (h*cols + w - 1) / w / 2
	if rows > maxRows {
		rows = maxRows
		cols = w * rows * 2 / h
		if cols < 1 {
			cols = 1
		}
	}
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := sampleRegionCell(f, x0, y0, w, h, col, 2*row, cols, 2*rows)
			bot := sampleRegionCell(f, x0, y0, w, h, col, 2*row+1, cols, 2*rows)
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bot)))
			b.WriteString(st.Render("▀"))
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sampleRegionCell averages the region pixels covered by sub-cell
// (cx, cy) of a cxTotal by cyTotal grid over the w×h region at
// (rx, ry).
func sampleRegionCell(f *optotype.Frame, rx, ry, w, h, cx, cy, cxTotal, cyTotal int) optotype.RGB {
	x0 := rx + w*cx/cxTotal
	x1 := rx + w*(cx+1)/cxTotal
	y0 := ry + h*cy/cyTotal
	y1 := ry + h*(cy+1)/cyTotal
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if x1 > f.Width {
		x1 = f.Width
	}
	if y1 > f.Height {
		y1 = f.Height
	}

	var r, g, b, n uint32
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := f.RGBAt(x, y)
			r += uint32(c.R)
			g += uint32(c.G)
			b += uint32(c.B)
			n++
		}
	}
	if n == 0 {
		return optotype.RGB{}
	}
	return optotype.RGB{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
	}
}

func hexColor(c optotype.RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
