package core

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. It implements image/color.Color so hosts that
// draw pixels can use it directly.
type Color struct {
	R, G, B uint8
}

// NoColor is the zero Color. Screens treat it as the terminal's default color.
var NoColor = Color{}

// Fixed colors for the non-brick entities.
var (
	ColorPaddle   = Color{R: 0, G: 0, B: 255}     // blue
	ColorBall     = Color{R: 169, G: 169, B: 169} // dark gray
	ColorHUD      = Color{R: 255, G: 255, B: 255}
	ColorGameOver = Color{R: 255, G: 85, B: 85}
)

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RandomColor picks each channel uniformly from [0, 256).
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.IntN(256)), //#nosec G115 -- IntN(256) fits in uint8
		G: uint8(rng.IntN(256)), //#nosec G115 -- IntN(256) fits in uint8
		B: uint8(rng.IntN(256)), //#nosec G115 -- IntN(256) fits in uint8
	}
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return r, g, b, a
}

// Hex returns the color as "#rrggbb", suitable for lipgloss.Color.
func (c Color) Hex() string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Dim returns the color blended halfway towards black.
func (c Color) Dim() Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.BlendRgb(colorful.Color{}, 0.5).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
