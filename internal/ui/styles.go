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

// Package ui renders the terminal chrome around the stimulus preview.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorAccent  = lipgloss.Color("#00AAFF")
	ColorGood    = lipgloss.Color("#00CC66")
	ColorBad     = lipgloss.Color("#FF4444")
	ColorWarning = lipgloss.Color("#FFAA00")
	ColorDim     = lipgloss.Color("#666666")
)

var (
	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1A1A2E")).
			Foreground(lipgloss.Color("#E0E0E0")).
			Padding(0, 1)

	StyleBadgeOn = lipgloss.NewStyle().
			Foreground(ColorGood).
			Bold(true)

	StyleBadgeOff = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleLevel = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleResultCorrect = lipgloss.NewStyle().
				Foreground(ColorGood).
				Bold(true)

	StyleResultIncorrect = lipgloss.NewStyle().
				Foreground(ColorBad).
				Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)
)
