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

// Package optotype computes and renders Landolt-C visual acuity stimuli.
//
// The engine converts clinical acuity notations (6/6 through 6/60) into
// visual angles, physical sizes and finally display pixels, clamps the
// result against the display bounds, and rasterises the optotype with
// anti-aliasing into an RGB frame. Rendering is synchronous and pure:
// each call maps (config, acuity, orientation, options) to a fresh frame
// plus an optional clamp warning, with no state carried between calls
// beyond the immutable display configuration.
package optotype

import (
	"seehuhn.de/go/geom/rect"
)

// Engine renders acuity stimuli for one display configuration.
type Engine struct {
	// MinHeightPx is the minimum visible optotype height enforced by the
	// underflow clamp. DefaultMinHeightPx permits a bare 1px gap;
	// StrictMinHeightPx additionally guarantees visible strokes. Set
	// before the first render; the engine never changes it.
	MinHeightPx float64

	cfg DisplayConfig
}

// New returns an Engine for the given display. The configuration is
// copied and must describe a positive viewing distance, pixel density and
// resolution.
func New(cfg DisplayConfig) *Engine {
	return &Engine{
		MinHeightPx: DefaultMinHeightPx,
		cfg:         cfg,
	}
}

// Config returns the display configuration the engine was built with.
func (e *Engine) Config() DisplayConfig {
	return e.cfg
}

// RenderOptions selects presentation details for a render call. Purely
// presentational; nothing here is persisted.
type RenderOptions struct {
	Theme      Theme
	ShowHUD    bool
	AdaptiveOn bool // drives the HUD adaptive badge only
}

// Render produces a single centered stimulus for the given acuity key and
// gap orientation. The returned warning is non-empty when the constraint
// policy scaled the stimulus; rendering still proceeds with the clamped
// size. An unknown acuity key reports ErrInvalidAcuityKey with a nil
// frame.
func (e *Engine) Render(acuityKey string, o Orientation, opts RenderOptions) (*Frame, string, error) {
	level, err := LevelByKey(acuityKey)
	if err != nil {
		return nil, "", err
	}

	g := ComputeSizes(level.GapArcMinutes, e.cfg)
	g, warning := ClampSizes(g, e.cfg, e.MinHeightPx, level.Label)

	pal := opts.Theme.palette()
	f := NewFrame(e.cfg.Width, e.cfg.Height)
	f.Fill(pal.background)

	r := NewRasterizer(e.clipRect())
	cx := float64(e.cfg.Width) / 2
	cy := float64(e.cfg.Height) / 2
	drawLandoltC(f, r, cx, cy, g, o, pal.ring, pal.background)

	if opts.ShowHUD {
		drawHUD(f, pal, level, o, opts.Theme, opts.AdaptiveOn)
	}

	return f, warning, nil
}

func (e *Engine) clipRect() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(e.cfg.Width),
		URy: float64(e.cfg.Height),
	}
}
