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
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
)

func BenchmarkRenderSingle(b *testing.B) {
	e := New(testConfig)

	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := e.Render("4", Right, RenderOptions{Theme: Light, ShowHUD: true}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderChart(b *testing.B) {
	e := New(testConfig)

	b.ReportAllocs()
	for b.Loop() {
		e.RenderChart(RenderOptions{Theme: Light})
	}
}

// BenchmarkRasterizerRing benchmarks our rasterizer on a plain ring.
func BenchmarkRasterizerRing(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			outer := circlePath(center, center, float64(size)*0.45)
			inner := circlePath(center, center, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				emit := func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				}
				r.Fill(outer, emit)
				r.Fill(inner, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8((1 - c) * float32(row[i]))
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing benchmarks x/image/vector on the same ring.
func BenchmarkVectorRing(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)

				addRingToVector(r, center, center, outerR, false)
				addRingToVector(r, center, center, innerR, true)

				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addRingToVector adds a circle to a vector.Rasterizer using cubic Bézier
// curves, clockwise or counter-clockwise.
func addRingToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(kappa)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
