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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Orientation is the direction the Landolt-C gap faces.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

// Degrees returns the rotation of the gap wedge about the optotype center,
// with Right as the 0° reference along positive x. Device y grows
// downward, so positive angles rotate clockwise on screen.
func (o Orientation) Degrees() float64 {
	switch o {
	case Up:
		return 270
	case Down:
		return 90
	case Left:
		return 180
	default:
		return 0
	}
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Orientations lists all four gap directions.
var Orientations = []Orientation{Up, Down, Left, Right}

// gapOverlapPx extends the gap wedge past the outer radius so the cut
// clears the anti-aliased rim of the ring.
const gapOverlapPx = 5.0

// kappa is the control-point distance for approximating a quarter circle
// with a cubic Bézier.
const kappa = 0.5522847498

// circlePath builds a circle around (cx, cy) from four cubic Bézier
// quadrants, starting at the right.
func circlePath(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// wedgePath builds the gap rectangle in optotype-local coordinates: one
// short edge on the center, the long axis extending along positive x. The
// orientation's rotation is applied through the rasterizer CTM.
func wedgePath(length, width float64) *path.Data {
	hw := width / 2

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: -hw}).
		LineTo(vec.Vec2{X: length, Y: -hw}).
		LineTo(vec.Vec2{X: length, Y: hw}).
		LineTo(vec.Vec2{X: 0, Y: hw}).
		Close()
}

// drawLandoltC renders one optotype centered at (cx, cy). Draw order is
// outer disc in fg, inner disc in bg (carving the ring), then the rotated
// gap wedge in bg cutting through the ring. When the rounded inner radius
// reaches the outer radius the hole erases the ring entirely; the
// constraint policy keeps sizes out of that regime, the rasterizer does
// not guard against it.
func drawLandoltC(f *Frame, r *Rasterizer, cx, cy float64, g Geometry, o Orientation, fg, bg RGB) {
	outerR := math.Round(g.HeightPx / 2)
	// Hole radius: total radius is 2.5 gap units, stroke is 1 gap unit,
	// leaving 1.5 gap units = 3*gap/2.
	innerR := math.Round(3 * g.GapPx / 2)
	stroke := math.Round(g.GapPx)

	r.CTM = matrix.Identity
	r.Fill(circlePath(cx, cy, outerR), func(y, xMin int, cov []float32) {
		f.blendSpan(y, xMin, cov, fg)
	})
	r.Fill(circlePath(cx, cy, innerR), func(y, xMin int, cov []float32) {
		f.blendSpan(y, xMin, cov, bg)
	})

	r.CTM = matrix.RotateDeg(o.Degrees()).Translate(cx, cy)
	r.Fill(wedgePath(outerR+gapOverlapPx, stroke), func(y, xMin int, cov []float32) {
		f.blendSpan(y, xMin, cov, bg)
	})
	r.CTM = matrix.Identity
}
