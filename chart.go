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
	"math/rand/v2"
)

// RandomOrientation picks one of the four gap directions uniformly.
func RandomOrientation() Orientation {
	return Orientations[rand.IntN(len(Orientations))]
}

// chartSlot is one optotype position in the chart layout.
type chartSlot struct {
	level AcuityLevel
	cx    float64
	cy    float64
}

// chartRowCounts gives the optotype count per row, top to bottom. The top
// row holds the easiest (largest) level with the fewest optotypes, the
// clinical chart convention.
var chartRowCounts = []int{2, 3, 4, 5}

// chartSlots lays out the fixed 4-row chart: one row per acuity level,
// easiest at the top, each row's optotypes evenly spaced across the canvas
// width and vertically centered within its band.
func chartSlots(cfg DisplayConfig) []chartSlot {
	rows := len(chartRowCounts)
	bandH := float64(cfg.Height) / float64(rows)

	var slots []chartSlot
	for row, count := range chartRowCounts {
		level := Levels[len(Levels)-1-row]
		cy := bandH*float64(row) + bandH/2
		for j := 0; j < count; j++ {
			cx := float64(cfg.Width) * float64(j+1) / float64(count+1)
			slots = append(slots, chartSlot{level: level, cx: cx, cy: cy})
		}
	}
	return slots
}

// RenderChart produces the full 4-row acuity chart with independently
// randomized gap orientations and a label at the right of each row. The
// constraint policy is applied silently per row with the permissive 2px
// floor; chart mode never surfaces a warning.
func (e *Engine) RenderChart(opts RenderOptions) *Frame {
	pal := opts.Theme.palette()
	f := NewFrame(e.cfg.Width, e.cfg.Height)
	f.Fill(pal.background)

	r := NewRasterizer(e.clipRect())

	var labelY float64 = -1
	for _, slot := range chartSlots(e.cfg) {
		g := ComputeSizes(slot.level.GapArcMinutes, e.cfg)
		g, _ = ClampSizes(g, e.cfg, DefaultMinHeightPx, slot.level.Label)

		drawLandoltC(f, r, slot.cx, slot.cy, g, RandomOrientation(), pal.ring, pal.background)

		if slot.cy != labelY {
			labelY = slot.cy
			drawText(f, e.cfg.Width-60, int(slot.cy)+4, slot.level.Label, pal.hint)
		}
	}

	if opts.ShowHUD {
		drawText(f, 20, f.Height-12, keyLegend, pal.hint)
	}

	return f
}
