package flownoise

import (
	"errors"
	"math"
	"testing"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    Backend
		wantErr bool
	}{
		{"gradient", BackendGradient, false},
		{"Simplex", BackendSimplex, false},
		{" perlin ", BackendPerlin, false},
		{"value", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBackend(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
		if got.String() != backendNames[tt.want] {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}

func TestBackend_String(t *testing.T) {
	if s := Backend(42).String(); s != "Backend(42)" {
		t.Errorf("String() = %q", s)
	}
}

func TestNewField(t *testing.T) {
	for _, b := range []Backend{BackendGradient, BackendSimplex, BackendPerlin} {
		f1, err := NewField(b, 1234)
		if err != nil {
			t.Fatalf("%v: %v", b, err)
		}
		f2, _ := NewField(b, 1234.75)
		for i := 0; i < 50; i++ {
			x, y, z := float64(i)*0.21+0.1, float64(i)*0.37+0.2, float64(i)*0.05+0.3
			v1, v2 := f1.Noise2D(x, y), f2.Noise2D(x, y)
			if math.IsNaN(v1) || math.IsInf(v1, 0) {
				t.Fatalf("%v: Noise2D(%v, %v) = %v", b, x, y, v1)
			}
			if b != BackendGradient && v1 != v2 {
				t.Fatalf("%v: seeds flooring to the same integer differ: %v != %v", b, v1, v2)
			}
			if a, c := f1.Noise3D(x, y, z), f1.Noise3D(x, y, z); a != c {
				t.Fatalf("%v: Noise3D not deterministic", b)
			}
		}
	}

	if _, err := NewField(Backend(7), 1); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewField(Backend(7)) error = %v, want ErrUnknownBackend", err)
	}
}

func TestNewField_GradientIsNoise(t *testing.T) {
	f, err := NewField(BackendGradient, 42)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := f.(*Noise)
	if !ok {
		t.Fatalf("gradient backend returned %T", f)
	}
	if n.Noise2D(0.3, 0.7) != New(42).Noise2D(0.3, 0.7) {
		t.Error("gradient backend differs from New")
	}
}

func TestIntSeed(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{12.9, 12},
		{-0.5, -1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := intSeed(tt.in); got != tt.want {
			t.Errorf("intSeed(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
