package flownoise

import "testing"

func TestMinMax(t *testing.T) {
	if v := Min(3, -1, 2); v != -1 {
		t.Errorf("Min = %v, want -1", v)
	}
	if v := Max(0.5, 2.5, -4.0); v != 2.5 {
		t.Errorf("Max = %v, want 2.5", v)
	}
	if v := Min(7); v != 7 {
		t.Errorf("Min of a single value = %v, want 7", v)
	}
	if v := Max("a"); v != "a" {
		t.Errorf("Max of a single value = %q, want a", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-2, -1},
		{0.25, 0.25},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -1, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		v, inMin, inMax, outMin, outMax, want float64
	}{
		{0, -1, 1, 0, 10, 5},
		{-1, -1, 1, 0, 10, 0},
		{1, -1, 1, 0, 10, 10},
		{2, -1, 1, 0, 10, 15},
		{3, 2, 2, 7, 9, 7},
	}
	for _, tt := range tests {
		if got := Remap(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax); got != tt.want {
			t.Errorf("Remap(%v, %v, %v, %v, %v) = %v, want %v",
				tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
		}
	}
	if got := Remap(float32(0.5), 0, 1, 0, 4); got != 2 {
		t.Errorf("Remap float32 = %v, want 2", got)
	}
}
