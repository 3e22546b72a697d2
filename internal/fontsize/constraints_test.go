package fontsize

import "testing"

func TestClamp(t *testing.T) {
	c := Constraints{Default: 10, Min: 8, Max: 128}

	tests := []struct {
		size int
		want int
	}{
		{7, 8},
		{8, 8},
		{9, 9},
		{128, 128},
		{129, 128},
		{1000, 128},
		{-3, 8},
	}

	for _, tt := range tests {
		if got := c.Clamp(tt.size); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !(Constraints{Min: 8, Max: 128}).Valid() {
		t.Error("8..128 should be valid")
	}
	if !(Constraints{Min: 10, Max: 10}).Valid() {
		t.Error("a single-point range should be valid")
	}
	if (Constraints{Min: 20, Max: 10}).Valid() {
		t.Error("inverted bounds should be invalid")
	}
}
