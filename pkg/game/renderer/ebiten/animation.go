package ebiten

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pulse returns a value between lo and hi following a sine wave over period ticks
func pulse(tick, period int, lo, hi float64) float64 {
	phase := float64(tick%period) / float64(period)
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// scale multiplies the RGB channels of c by brightness
func scale(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
		A: c.A,
	}
}

// goalColor pulses the extraction zone between 40% and 100% brightness every second
func (e *EbitenRenderer) goalColor() color.RGBA {
	return scale(colorGoal, pulse(e.tick, ticksPerSecond, 0.4, 1.0))
}

// drawScanline draws a horizontal line sweeping down the screen every 4 seconds
func (e *EbitenRenderer) drawScanline(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	period := ticksPerSecond * 4
	y := float32(e.tick%period) / float32(period) * float32(h)
	vector.DrawFilledRect(screen, 0, y, float32(w), 2, colorScanline, false)
}

// drawStatic scatters noise specks over the screen
func (e *EbitenRenderer) drawStatic(screen *ebiten.Image, rng *rand.Rand) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i := 0; i < noiseDots; i++ {
		x := float32(rng.Intn(w))
		y := float32(rng.Intn(h))
		vector.DrawFilledRect(screen, x, y, 1, 1, colorNoise, false)
	}
}
