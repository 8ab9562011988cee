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

import "math"

// DisplayConfig describes the physical display the stimuli are rendered
// for. It is fixed for the lifetime of an Engine.
type DisplayConfig struct {
	// ViewingDistanceMM is the eye-to-screen distance in millimetres.
	// Must be positive.
	ViewingDistanceMM float64

	// PixelsPerInch is the physical pixel density of the display.
	// Must be positive.
	PixelsPerInch float64

	// Width and Height give the canvas resolution in pixels.
	// Both must be positive.
	Width  int
	Height int
}

// minDimension returns the smaller of the two canvas dimensions, the bound
// used by the overflow clamp.
func (c DisplayConfig) minDimension() int {
	return min(c.Width, c.Height)
}

// Geometry holds the computed pixel sizes for one optotype. Values are
// derived per render call and never cached.
type Geometry struct {
	GapPx    float64 // width of the directional gap (also the stroke width)
	HeightPx float64 // total optotype height, 5 gap widths when unclamped
}

const (
	mmPerInch = 25.4

	// heightPerGap is the canonical Landolt-C proportion: stroke width and
	// gap width are 1 unit, total diameter is 5 units.
	heightPerGap = 5.0
)

// ArcminToRadians converts a visual angle from arc minutes to radians.
func ArcminToRadians(arcmin float64) float64 {
	return arcmin * math.Pi / (180 * 60)
}

// VisualAngleToMM converts a visual angle in radians to a physical size in
// millimetres at the given viewing distance. The exact tangent is used
// rather than the small-angle approximation so that conversions round-trip
// precisely.
func VisualAngleToMM(angleRad, viewingDistanceMM float64) float64 {
	return viewingDistanceMM * math.Tan(angleRad)
}

// MMToPixels converts a physical size in millimetres to pixels at the given
// display density.
func MMToPixels(sizeMM, pixelsPerInch float64) float64 {
	return sizeMM * pixelsPerInch / mmPerInch
}

// ComputeSizes chains the angle, physical-size and pixel conversions to
// derive the gap and total height of an optotype for a gap angle in arc
// minutes. Non-positive or NaN inputs propagate; validation is the
// caller's job.
func ComputeSizes(arcmin float64, cfg DisplayConfig) Geometry {
	angleRad := ArcminToRadians(arcmin)
	gapMM := VisualAngleToMM(angleRad, cfg.ViewingDistanceMM)
	gapPx := MMToPixels(gapMM, cfg.PixelsPerInch)
	return Geometry{
		GapPx:    gapPx,
		HeightPx: heightPerGap * gapPx,
	}
}
