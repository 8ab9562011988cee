package optotype

import (
	"errors"
	"testing"
)

func TestLevelsOrdering(t *testing.T) {
	if len(Levels) != 4 {
		t.Fatalf("len(Levels) = %d, want 4", len(Levels))
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].GapArcMinutes <= Levels[i-1].GapArcMinutes {
			t.Errorf("gap angles not strictly increasing at %q: %v <= %v",
				Levels[i].Key, Levels[i].GapArcMinutes, Levels[i-1].GapArcMinutes)
		}
	}
}

func TestLevelByKey(t *testing.T) {
	tests := []struct {
		key     string
		label   string
		wantErr bool
	}{
		{"1", "6/6", false},
		{"2", "6/12", false},
		{"3", "6/18", false},
		{"4", "6/60", false},
		{"9", "", true},
		{"0", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("key "+tt.key, func(t *testing.T) {
			lv, err := LevelByKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAcuityKey) {
					t.Errorf("err = %v, want ErrInvalidAcuityKey", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lv.Label != tt.label {
				t.Errorf("Label = %q, want %q", lv.Label, tt.label)
			}
		})
	}
}
