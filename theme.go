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

// Theme selects the stimulus color scheme. Dark inverts foreground and
// background relative to Light.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "Dark"
	}
	return "Light"
}

// palette holds the six semantic colors of a theme. Hole and gap are
// background-colored cut-outs, so they always equal the background.
type palette struct {
	background RGB
	ring       RGB
	hole       RGB
	gap        RGB
	text       RGB
	hint       RGB
}

func (t Theme) palette() palette {
	if t == Dark {
		bg := RGB{0, 0, 0}
		return palette{
			background: bg,
			ring:       RGB{255, 255, 255},
			hole:       bg,
			gap:        bg,
			text:       RGB{255, 255, 255},
			hint:       RGB{155, 155, 155},
		}
	}
	bg := RGB{255, 255, 255}
	return palette{
		background: bg,
		ring:       RGB{0, 0, 0},
		hole:       bg,
		gap:        bg,
		text:       RGB{0, 0, 0},
		hint:       RGB{100, 100, 100},
	}
}

// Badge colors for the HUD adaptive-mode indicator.
var (
	badgeActive = RGB{0, 168, 64}    // green-ish: adaptive stepping on
	badgeMuted  = RGB{128, 128, 128} // muted: adaptive stepping off
)
