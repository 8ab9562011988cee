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

package main

import (
	"fmt"
	"image/png"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/acuitylab/optotype"
	"github.com/acuitylab/optotype/internal/app"
	"github.com/acuitylab/optotype/internal/session"
)

var (
	flagDistance float64
	flagPPI      float64
	flagWidth    int
	flagHeight   int
	flagStrict   bool
	flagLog      string
	flagDark     bool

	flagAcuity      string
	flagOrientation string
	flagOutput      string
	flagHUD         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "optotype",
		Short: "Landolt-C visual acuity stimulus engine",
		Long: `optotype presents calibrated Landolt C optotypes for visual acuity
testing. Sizes are derived from the viewing distance and display pixel
density, so a correctly configured display shows gaps subtending the
standard visual angles.

Without a subcommand an interactive terminal session starts: the
stimulus is previewed in the terminal, W/A/S/D report the perceived gap
direction, and every trial is appended to a CSV log.`,
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagDistance, "distance", 600.0, "Viewing distance in millimeters")
	pf.Float64Var(&flagPPI, "ppi", 96.0, "Display pixel density in pixels per inch")
	pf.IntVar(&flagWidth, "width", 800, "Canvas width in pixels")
	pf.IntVar(&flagHeight, "height", 600, "Canvas height in pixels")
	pf.BoolVar(&flagStrict, "strict-floor", false, "Use the strict 5px minimum optotype height instead of 2px")
	pf.BoolVar(&flagDark, "dark", false, "Start with the dark theme")

	rootCmd.Flags().StringVar(&flagLog, "log", "acuity_logs.csv", "Trial log file (empty to disable logging)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single optotype to a PNG file",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&flagAcuity, "acuity", "2", "Acuity level key (1-4)")
	snapshotCmd.Flags().StringVar(&flagOrientation, "orientation", "Right", "Gap orientation (Up, Down, Left, Right or Random)")
	snapshotCmd.Flags().StringVarP(&flagOutput, "output", "o", "optotype.png", "Output PNG file")
	snapshotCmd.Flags().BoolVar(&flagHUD, "hud", false, "Include the on-screen HUD")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the 4-row acuity chart to a PNG file",
		RunE:  runChart,
	}
	chartCmd.Flags().StringVarP(&flagOutput, "output", "o", "chart.png", "Output PNG file")
	chartCmd.Flags().BoolVar(&flagHUD, "hud", false, "Include the key legend")

	rootCmd.AddCommand(snapshotCmd, chartCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEngine() *optotype.Engine {
	e := optotype.New(optotype.DisplayConfig{
		ViewingDistanceMM: flagDistance,
		PixelsPerInch:     flagPPI,
		Width:             flagWidth,
		Height:            flagHeight,
	})
	if flagStrict {
		e.MinHeightPx = optotype.StrictMinHeightPx
	}
	return e
}

func runInteractive(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	var logger *session.Logger
	if flagLog != "" {
		var err error
		logger, err = session.OpenLog(flagLog)
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	model := app.New(engine, logger, flagDark)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	orientation, err := parseOrientation(flagOrientation)
	if err != nil {
		return err
	}

	theme := optotype.Light
	if flagDark {
		theme = optotype.Dark
	}

	frame, warning, err := engine.Render(flagAcuity, orientation, optotype.RenderOptions{
		Theme:   theme,
		ShowHUD: flagHUD,
	})
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintln(os.Stderr, warning)
	}

	return writePNG(flagOutput, frame)
}

func runChart(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	theme := optotype.Light
	if flagDark {
		theme = optotype.Dark
	}

	frame := engine.RenderChart(optotype.RenderOptions{
		Theme:   theme,
		ShowHUD: flagHUD,
	})

	return writePNG(flagOutput, frame)
}

func parseOrientation(s string) (optotype.Orientation, error) {
	switch s {
	case "Up", "up":
		return optotype.Up, nil
	case "Down", "down":
		return optotype.Down, nil
	case "Left", "left":
		return optotype.Left, nil
	case "Right", "right":
		return optotype.Right, nil
	case "Random", "random":
		return optotype.RandomOrientation(), nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func writePNG(path string, frame *optotype.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
