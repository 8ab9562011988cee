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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}
	r := NewRasterizer(clip)

	coverage := make([]float32, 10)
	emit := func(y, xMin int, cov []float32) {
		if y == 0 {
			for i, c := range cov {
				coverage[xMin+i] = c
			}
		}
	}

	r.Fill(trianglePath, emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0 // 0.05, 0.15, ..., 0.95
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestCircleCoverageArea checks that total coverage of a filled circle
// approximates its analytic area.
func TestCircleCoverageArea(t *testing.T) {
	const (
		size   = 64
		radius = 20.0
	)
	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}
	r := NewRasterizer(clip)

	var total float64
	r.Fill(circlePath(size/2, size/2, radius), func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += float64(c)
		}
	})

	want := math.Pi * radius * radius
	if math.Abs(total-want) > 0.01*want {
		t.Errorf("covered area = %.2f, want %.2f ± 1%%", total, want)
	}
}

// TestRectangleRotation verifies the CTM path: a unit-width bar rotated by
// 90° lands in the vertical, not horizontal, half of its bounding area.
func TestRectangleRotation(t *testing.T) {
	const size = 32
	clip := rect.Rect{LLx: 0, LLy: 0, URx: size, URy: size}
	r := NewRasterizer(clip)
	r.CTM = matrix.RotateDeg(90).Translate(size/2, size/2)

	bar := wedgePath(12, 4) // extends along +x in shape space

	var sumX, sumY, total float64
	r.Fill(bar, func(y, xMin int, cov []float32) {
		for i, c := range cov {
			sumX += float64(xMin+i) * float64(c)
			sumY += float64(y) * float64(c)
			total += float64(c)
		}
	})

	if total == 0 {
		t.Fatal("nothing rasterized")
	}
	meanX := sumX / total
	meanY := sumY / total

	// Rotation by +90° maps +x to +y (downward on screen): centroid below
	// center, horizontally centered.
	if math.Abs(meanX-size/2) > 1 {
		t.Errorf("centroid x = %.2f, want ~%d", meanX, size/2)
	}
	if meanY < size/2+3 {
		t.Errorf("centroid y = %.2f, want well below %d", meanY, size/2)
	}
}

// TestFillClipped verifies output never escapes the clip rectangle.
func TestFillClipped(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 16, URy: 16}
	r := NewRasterizer(clip)

	// Circle centered on the clip corner: three quarters lie outside.
	r.Fill(circlePath(0, 0, 10), func(y, xMin int, cov []float32) {
		if y < 0 || y >= 16 {
			t.Errorf("emitted row %d outside clip", y)
		}
		if xMin < 0 || xMin+len(cov) > 16 {
			t.Errorf("emitted span [%d,%d) outside clip", xMin, xMin+len(cov))
		}
	})
}

// TestEmptyPath verifies degenerate inputs emit nothing.
func TestEmptyPath(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 16, URy: 16}
	r := NewRasterizer(clip)

	for _, p := range []*path.Data{
		{},
		(&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}),
		(&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 9, Y: 5}).Close(), // zero area
	} {
		r.Fill(p, func(y, xMin int, cov []float32) {
			for _, c := range cov {
				if c != 0 {
					t.Errorf("degenerate path emitted coverage %v at y=%d", c, y)
				}
			}
		})
	}
}
