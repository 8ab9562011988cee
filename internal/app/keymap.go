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

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acuitylab/optotype"
)

// InputKind classifies a resolved key press.
type InputKind int

const (
	InputNone InputKind = iota
	InputQuit
	InputSelectLevel
	InputRespond
	InputToggleAdaptive
	InputToggleTheme
	InputToggleHUD
	InputToggleZoom
)

// InputEvent is a key press translated into a session action.
type InputEvent struct {
	Kind     InputKind
	Level    string               // set for InputSelectLevel
	Response optotype.Orientation // set for InputRespond
}

// resolveKey maps a terminal key press to its session action. Unbound
// keys resolve to InputNone.
func resolveKey(msg tea.KeyMsg) InputEvent {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return InputEvent{Kind: InputQuit}

	case "1", "2", "3", "4":
		return InputEvent{Kind: InputSelectLevel, Level: msg.String()}

	case "w", "W", "up":
		return InputEvent{Kind: InputRespond, Response: optotype.Up}
	case "s", "S", "down":
		return InputEvent{Kind: InputRespond, Response: optotype.Down}
	case "a", "A", "left":
		return InputEvent{Kind: InputRespond, Response: optotype.Left}
	case "d", "D", "right":
		return InputEvent{Kind: InputRespond, Response: optotype.Right}

	case "m", "M":
		return InputEvent{Kind: InputToggleAdaptive}
	case "t", "T":
		return InputEvent{Kind: InputToggleTheme}
	case "h", "H":
		return InputEvent{Kind: InputToggleHUD}
	case "f", "F":
		return InputEvent{Kind: InputToggleZoom}
	}

	return InputEvent{Kind: InputNone}
}
