package optotype

import (
	"testing"
)

func TestChartSlots(t *testing.T) {
	slots := chartSlots(gapTestConfig)

	if len(slots) != 14 {
		t.Fatalf("got %d slots, want 14", len(slots))
	}

	bandH := float64(gapTestConfig.Height) / float64(len(chartRowCounts))
	byRow := make(map[int][]chartSlot)
	for _, s := range slots {
		row := int(s.cy / bandH)
		byRow[row] = append(byRow[row], s)
	}

	for i, want := range chartRowCounts {
		row := byRow[i]
		if len(row) != want {
			t.Errorf("row %d has %d optotypes, want %d", i, len(row), want)
		}

		// Largest sizes at the top, decreasing downward.
		wantLevel := Levels[len(Levels)-1-i]
		for _, s := range row {
			if s.level.Key != wantLevel.Key {
				t.Errorf("row %d holds level %q, want %q", i, s.level.Key, wantLevel.Key)
			}
		}

		// Even horizontal spacing.
		for j, s := range row {
			wantX := float64(gapTestConfig.Width) * float64(j+1) / float64(want+1)
			if s.cx != wantX {
				t.Errorf("row %d slot %d at x=%g, want %g", i, j, s.cx, wantX)
			}
		}
	}
}

func TestRenderChart(t *testing.T) {
	e := New(gapTestConfig)

	f := e.RenderChart(RenderOptions{Theme: Light})
	if f.Width != gapTestConfig.Width || f.Height != gapTestConfig.Height {
		t.Fatalf("frame is %dx%d, want %dx%d", f.Width, f.Height, gapTestConfig.Width, gapTestConfig.Height)
	}

	// Every band must contain ring pixels.
	bandH := gapTestConfig.Height / len(chartRowCounts)
	for i := range chartRowCounts {
		var dark int
		for y := i * bandH; y < (i+1)*bandH && y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				if brightness(f.RGBAt(x, y)) < 64 {
					dark++
				}
			}
		}
		if dark == 0 {
			t.Errorf("band %d is empty", i)
		}
	}
}

func TestRenderChartDark(t *testing.T) {
	e := New(gapTestConfig)

	f := e.RenderChart(RenderOptions{Theme: Dark})
	if c := f.RGBAt(0, 0); c != (RGB{0, 0, 0}) {
		t.Errorf("dark chart background = %+v, want black", c)
	}
}

func TestRandomOrientation(t *testing.T) {
	seen := make(map[Orientation]bool)
	for i := 0; i < 200; i++ {
		o := RandomOrientation()
		switch o {
		case Up, Down, Left, Right:
			seen[o] = true
		default:
			t.Fatalf("unexpected orientation %v", o)
		}
	}
	if len(seen) != 4 {
		t.Errorf("200 draws produced only %d distinct orientations", len(seen))
	}
}
