package ebiten

import (
	"image/color"
	"math"
	"testing"
)

func TestPulse_StaysInRange(t *testing.T) {
	for tick := 0; tick < ticksPerSecond*3; tick++ {
		v := pulse(tick, ticksPerSecond, 0.4, 1.0)
		if v < 0.4 || v > 1.0 {
			t.Fatalf("pulse(%d) = %v, outside [0.4, 1.0]", tick, v)
		}
	}
	if got := pulse(0, ticksPerSecond, 0.4, 1.0); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("pulse at phase 0 = %v, want 0.7", got)
	}
}

func TestScale_KeepsAlpha(t *testing.T) {
	got := scale(color.RGBA{200, 100, 50, 128}, 0.5)
	want := color.RGBA{100, 50, 25, 128}
	if got != want {
		t.Errorf("scale = %v, want %v", got, want)
	}
}
