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

import "fmt"

// Minimum-visible-height floors for the constraint policy, in pixels.
// The permissive default allows a 1px gap; the strict floor additionally
// guarantees a 1px stroke on either side of it.
const (
	DefaultMinHeightPx = 2.0
	StrictMinHeightPx  = 5.0
)

// ClampSizes bounds the computed sizes against the display. The overflow
// clamp against min(width, height) runs first, then the underflow clamp
// against minHeightPx, applied to the post-overflow value. Scaling is
// always uniform so the gap:height ratio is preserved.
//
// At most one warning is returned; when both clamps fire (degenerate
// configurations only) the underflow warning wins. Already-clamped sizes
// pass through unchanged, so the policy is idempotent.
func ClampSizes(g Geometry, cfg DisplayConfig, minHeightPx float64, label string) (Geometry, string) {
	var warning string

	if limit := float64(cfg.minDimension()); g.HeightPx > limit {
		scale := limit / g.HeightPx
		g.HeightPx = limit
		g.GapPx *= scale
		warning = fmt.Sprintf("%s stimulus exceeds screen size, scaled down", label)
	}

	if g.HeightPx < minHeightPx {
		scale := minHeightPx / g.HeightPx
		original := g.HeightPx
		g.HeightPx = minHeightPx
		g.GapPx *= scale
		warning = fmt.Sprintf("%s stimulus very small (computed height %.2fpx < %.0fpx), using minimum visible size",
			label, original, minHeightPx)
	}

	return g, warning
}
