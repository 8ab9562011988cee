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

// Package app is the Bubble Tea controller for the interactive acuity
// test. Key presses drive the session state and each change re-renders
// the stimulus into a terminal preview.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acuitylab/optotype"
	"github.com/acuitylab/optotype/internal/session"
	"github.com/acuitylab/optotype/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies.
// Bubble Tea uses value receivers, so pointer fields keep every copy of
// the model looking at the same engine, session and log.
type shared struct {
	engine *optotype.Engine
	state  *session.State
	logger *session.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	trials  int
	correct int
	zoomed  bool

	lastResult string // "", "Correct" or "Incorrect"
	lastDetail string
	logErr     error

	shared *shared
}

// New creates the interactive model. The logger may be nil to disable
// trial logging.
func New(engine *optotype.Engine, logger *session.Logger, dark bool) Model {
	state := session.NewState()
	if dark {
		state.Theme = optotype.Dark
	}
	return Model{
		shared: &shared{
			engine: engine,
			state:  state,
			logger: logger,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LogErrorMsg:
		m.logErr = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.shared.state

	switch ev := resolveKey(msg); ev.Kind {
	case InputQuit:
		return m, tea.Quit

	case InputSelectLevel:
		if err := s.SetLevel(ev.Level); err == nil {
			m.lastResult = ""
			m.lastDetail = ""
		}

	case InputRespond:
		rec := s.Respond(ev.Response)
		m.trials++
		if rec.Result == session.Correct {
			m.correct++
		}
		m.lastResult = string(rec.Result)
		m.lastDetail = fmt.Sprintf("%s, gap was %s, you answered %s",
			rec.Level, rec.TrueOrientation, rec.UserResponse)
		return m, m.logTrial(rec)

	case InputToggleAdaptive:
		s.Adaptive = !s.Adaptive

	case InputToggleTheme:
		if s.Theme == optotype.Light {
			s.Theme = optotype.Dark
		} else {
			s.Theme = optotype.Light
		}

	case InputToggleHUD:
		s.ShowHUD = !s.ShowHUD

	case InputToggleZoom:
		m.zoomed = !m.zoomed
	}

	return m, nil
}

// logTrial returns a command that appends the record to the CSV log.
func (m Model) logTrial(rec session.Record) tea.Cmd {
	logger := m.shared.logger
	if logger == nil {
		return nil
	}
	return func() tea.Msg {
		if err := logger.Append(rec); err != nil {
			return LogErrorMsg{Err: err}
		}
		return nil
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting acuity test..."
	}

	s := m.shared.state

	level, err := optotype.LevelByKey(s.Key)
	if err != nil {
		return fmt.Sprintf("internal error: %v", err)
	}

	statusBar := ui.RenderStatusBar(m.width, level.Label, s.Adaptive,
		s.Theme.String(), m.trials, m.correct)

	frame, warning, err := m.shared.engine.Render(s.Key, s.Orientation, optotype.RenderOptions{
		Theme:      s.Theme,
		ShowHUD:    s.ShowHUD,
		AdaptiveOn: s.Adaptive,
	})
	if err != nil {
		return fmt.Sprintf("render error: %v", err)
	}

	previewRows := m.height - 5
	if previewRows < 4 {
		previewRows = 4
	}
	var preview string
	if m.zoomed {
		// Magnify the central quarter of the canvas, where the
		// optotype sits.
		x0 := frame.Width / 4
		y0 := frame.Height / 4
		preview = ui.RenderFrameRegion(frame, x0, y0, frame.Width-x0, frame.Height-y0,
			m.width, previewRows)
	} else {
		preview = ui.RenderFrame(frame, m.width, previewRows)
	}

	lines := statusBar + "\n" + preview + "\n" +
		ui.RenderResultLine(m.lastResult, m.lastDetail) + "\n" +
		ui.RenderHelp()

	if warning != "" {
		lines += "\n" + ui.StyleWarning.Render(warning)
	}
	if m.logErr != nil {
		lines += "\n" + ui.StyleWarning.Render("log write failed: "+m.logErr.Error())
	}

	return lines
}
