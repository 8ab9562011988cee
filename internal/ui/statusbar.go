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
)

// RenderStatusBar renders the session summary line at the top of the
// screen.
func RenderStatusBar(width int, level string, adaptive bool, theme string, trials, correct int) string {
	adaptiveBadge := StyleBadgeOff.Render("ADAPTIVE OFF")
	if adaptive {
		adaptiveBadge = StyleBadgeOn.Render("ADAPTIVE ON")
	}

	content := fmt.Sprintf("%s  %s  Theme: %s  Trials: %d  Correct: %d",
		StyleLevel.Render("Acuity "+level), adaptiveBadge, theme, trials, correct)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

// RenderResultLine shows the outcome of the last trial, or a hint when
// no trial has been answered yet.
func RenderResultLine(result string, detail string) string {
	switch result {
	case "Correct":
		return StyleResultCorrect.Render("✓ Correct") + StyleHelp.Render("  "+detail)
	case "Incorrect":
		return StyleResultIncorrect.Render("✗ Incorrect") + StyleHelp.Render("  "+detail)
	default:
		return StyleHelp.Render("Respond with W/A/S/D or the arrow keys")
	}
}

// RenderHelp renders the keybinding reference line.
func RenderHelp() string {
	return StyleHelp.Render("1-4 acuity · w/a/s/d respond · m adaptive · t theme · h hud · f zoom · esc quit")
}
