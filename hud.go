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
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const keyLegend = "Keys: 1-4 acuity  W/A/S/D or arrows respond  M adaptive  T theme  H hud  Esc exit"

// drawText renders s onto the frame with the baseline at (x, y).
func drawText(f *Frame, x, y int, s string, c RGB) {
	d := font.Drawer{
		Dst:  f,
		Src:  image.NewUniform(c.rgba()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawHUD overlays the status text: acuity and orientation on the top
// left, adaptive and theme badges below them, and the key legend along the
// bottom edge.
func drawHUD(f *Frame, pal palette, level AcuityLevel, o Orientation, theme Theme, adaptiveOn bool) {
	drawText(f, 20, 24, fmt.Sprintf("Acuity: %s", level.Label), pal.text)
	drawText(f, 20, 44, fmt.Sprintf("Orientation: %s", o), pal.text)

	badge := badgeMuted
	mode := "ADAPTIVE OFF"
	if adaptiveOn {
		badge = badgeActive
		mode = "ADAPTIVE ON"
	}
	drawText(f, 20, 64, mode, badge)
	drawText(f, 20, 84, fmt.Sprintf("Theme: %s", theme), pal.hint)

	drawText(f, 20, f.Height-12, keyLegend, pal.hint)
}
