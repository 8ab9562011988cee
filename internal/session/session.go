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

// Package session tracks the state of a visual acuity testing session:
// the current level and gap orientation, the adaptive staircase, and
// per-trial records.
package session

import (
	"time"

	"github.com/acuitylab/optotype"
)

// Result labels a trial outcome.
type Result string

const (
	Correct   Result = "Correct"
	Incorrect Result = "Incorrect"
)

// Record is one completed trial.
type Record struct {
	Timestamp        time.Time
	Level            string // acuity label, e.g. "6/12"
	TrueOrientation  optotype.Orientation
	UserResponse     optotype.Orientation
	Result           Result
	Adaptive         bool
}

// Mode returns the CSV mode column for the record.
func (r Record) Mode() string {
	if r.Adaptive {
		return "Adaptive"
	}
	return "Manual"
}

// State holds the mutable session state between trials.
type State struct {
	Key         string
	Orientation optotype.Orientation
	Adaptive    bool
	Theme       optotype.Theme
	ShowHUD     bool
}

// NewState starts a session at the mid-range level with a random gap
// orientation. Adaptive stepping is on and the light theme active.
func NewState() *State {
	return &State{
		Key:         "2",
		Orientation: optotype.RandomOrientation(),
		Adaptive:    true,
		Theme:       optotype.Light,
		ShowHUD:     true,
	}
}

// SetLevel switches to the given acuity key manually and randomizes the
// orientation for the next presentation. The key must be valid.
func (s *State) SetLevel(key string) error {
	if _, err := optotype.LevelByKey(key); err != nil {
		return err
	}
	s.Key = key
	s.Orientation = optotype.RandomOrientation()
	return nil
}

// Respond scores the user's answer against the current orientation,
// applies the adaptive staircase when enabled, and randomizes the
// orientation for the next trial. The returned record describes the
// completed trial.
func (s *State) Respond(response optotype.Orientation) Record {
	level, _ := optotype.LevelByKey(s.Key)

	rec := Record{
		Timestamp:       time.Now(),
		Level:           level.Label,
		TrueOrientation: s.Orientation,
		UserResponse:    response,
		Result:          Incorrect,
		Adaptive:        s.Adaptive,
	}
	if response == s.Orientation {
		rec.Result = Correct
	}

	if s.Adaptive {
		if rec.Result == Correct {
			s.Key = stepKey(s.Key, -1)
		} else {
			s.Key = stepKey(s.Key, +1)
		}
	}
	s.Orientation = optotype.RandomOrientation()

	return rec
}

// stepKey moves one level through the table, clamped at both ends.
// Negative delta steps harder (toward "1", the smallest gap), positive
// steps easier.
func stepKey(key string, delta int) string {
	for i, lvl := range optotype.Levels {
		if lvl.Key == key {
			j := i + delta
			if j < 0 {
				j = 0
			}
			if j >= len(optotype.Levels) {
				j = len(optotype.Levels) - 1
			}
			return optotype.Levels[j].Key
		}
	}
	return key
}
