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

package session

import (
	"encoding/csv"
	"fmt"
	"os"
)

// logHeader is written once when a log file is first created.
var logHeader = []string{
	"Timestamp", "Acuity Level", "True Orientation",
	"User Response", "Result", "Mode",
}

const timestampLayout = "2006-01-02 15:04:05"

// Logger appends trial records to a CSV file. The file is opened in
// append mode so multiple sessions accumulate in one log; the header is
// only written when the file did not exist before.
type Logger struct {
	f *os.File
	w *csv.Writer
}

// OpenLog opens (or creates) the trial log at path.
func OpenLog(path string) (*Logger, error) {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trial log: %w", err)
	}

	l := &Logger{f: f, w: csv.NewWriter(f)}
	if fresh {
		if err := l.w.Write(logHeader); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing log header: %w", err)
		}
		l.w.Flush()
		if err := l.w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing log header: %w", err)
		}
	}
	return l, nil
}

// Append writes one trial record and flushes it to disk.
func (l *Logger) Append(rec Record) error {
	row := []string{
		rec.Timestamp.Format(timestampLayout),
		rec.Level,
		rec.TrueOrientation.String(),
		rec.UserResponse.String(),
		string(rec.Result),
		rec.Mode(),
	}
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("writing trial record: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("writing trial record: %w", err)
	}
	return nil
}

// Close flushes pending rows and closes the file.
func (l *Logger) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}
