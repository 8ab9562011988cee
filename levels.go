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
	"errors"
	"fmt"
)

// ErrInvalidAcuityKey is returned when a render is requested for an acuity
// key outside the fixed level table. The caller should re-prompt; no frame
// is produced.
var ErrInvalidAcuityKey = errors.New("invalid acuity key")

// AcuityLevel is one entry of the fixed acuity table. The gap angle is the
// visual angle subtended by the optotype gap at the nominal distance of the
// Snellen notation.
type AcuityLevel struct {
	Key           string  // selection key, "1" through "4"
	Label         string  // Snellen-style notation, e.g. "6/6"
	GapArcMinutes float64 // gap visual angle in arc minutes
}

// Levels is the fixed acuity table, ordered from hardest (smallest gap
// angle) to easiest (largest). Gap angles are strictly increasing.
var Levels = []AcuityLevel{
	{Key: "1", Label: "6/6", GapArcMinutes: 1.0},
	{Key: "2", Label: "6/12", GapArcMinutes: 2.0},
	{Key: "3", Label: "6/18", GapArcMinutes: 3.0},
	{Key: "4", Label: "6/60", GapArcMinutes: 10.0},
}

// LevelByKey looks up an acuity level by its selection key. Unknown keys
// report ErrInvalidAcuityKey.
func LevelByKey(key string) (AcuityLevel, error) {
	for _, lv := range Levels {
		if lv.Key == key {
			return lv, nil
		}
	}
	return AcuityLevel{}, fmt.Errorf("%w: %q", ErrInvalidAcuityKey, key)
}
