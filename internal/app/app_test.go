package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuitylab/optotype"
)

func testEngine() *optotype.Engine {
	return optotype.New(optotype.DisplayConfig{
		ViewingDistanceMM: 600,
		PixelsPerInch:     96,
		Width:             200,
		Height:            200,
	})
}

func TestModelRespond(t *testing.T) {
	m := New(testEngine(), nil, false)

	// Force a known orientation so the answer is deterministic.
	m.shared.state.Adaptive = false
	m.shared.state.Orientation = optotype.Left

	next, _ := m.Update(keyRune('a'))
	got := next.(Model)

	assert.Equal(t, 1, got.trials)
	assert.Equal(t, 1, got.correct)
	assert.Equal(t, "Correct", got.lastResult)
}

func TestModelAdaptiveSteps(t *testing.T) {
	m := New(testEngine(), nil, false)
	require.Equal(t, "2", m.shared.state.Key)

	m.shared.state.Orientation = optotype.Up
	next, _ := m.Update(keyRune('w'))
	got := next.(Model)

	assert.Equal(t, "1", got.shared.state.Key, "correct answer steps harder")
}

func TestModelToggles(t *testing.T) {
	m := New(testEngine(), nil, false)
	s := m.shared.state

	m.Update(keyRune('m'))
	assert.False(t, s.Adaptive)

	m.Update(keyRune('t'))
	assert.Equal(t, optotype.Dark, s.Theme)
	m.Update(keyRune('t'))
	assert.Equal(t, optotype.Light, s.Theme)

	m.Update(keyRune('h'))
	assert.False(t, s.ShowHUD)

	// Zoom lives on the model itself, not the shared state.
	next, _ := m.Update(keyRune('f'))
	assert.True(t, next.(Model).zoomed)
}

func TestModelDarkStart(t *testing.T) {
	m := New(testEngine(), nil, true)
	assert.Equal(t, optotype.Dark, m.shared.state.Theme)
}

func TestModelQuit(t *testing.T) {
	m := New(testEngine(), nil, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelView(t *testing.T) {
	m := New(testEngine(), nil, false)
	m.shared.state.ShowHUD = false

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(Model).View()

	assert.Contains(t, view, "6/12")
	assert.Contains(t, view, "ADAPTIVE ON")
	assert.Contains(t, view, "▀")
}
