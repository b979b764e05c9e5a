package blend

import (
	"math"
	"testing"
)

func TestMulDiv255Exact(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			want := byte(math.Round(float64(a*b) / 255))
			if got := mulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestScreenAlpha(t *testing.T) {
	tests := []struct {
		sa, da, want byte
	}{
		{0, 0, 0},
		{255, 0, 255},
		{0, 255, 255},
		{128, 128, 192},
		{255, 255, 255},
	}
	for _, tt := range tests {
		if got := screenAlpha(tt.sa, tt.da); got != tt.want {
			t.Errorf("screenAlpha(%d, %d) = %d, want %d", tt.sa, tt.da, got, tt.want)
		}
	}
}
