package nematic

import (
	"image/color"
	"math"
)

const paletteSize = 256

var nematicPalette = buildNematicPalette()

// Palette exposes the grayscale palette used for rendering the director
// field.
func (w *World) Palette() []color.RGBA {
	return nematicPalette
}

func buildNematicPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i := range palette {
		v := uint8(i)
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}

// encodeDisplayValue folds an orientation onto the director range [0, π)
// and quantizes it to a palette index. The rotors are headless: θ and θ+π
// describe the same director and map to the same shade, so aligned domains
// render as flat regions regardless of sign.
func encodeDisplayValue(theta float64) uint8 {
	d := math.Mod(theta, math.Pi)
	if d < 0 {
		d += math.Pi
	}
	idx := int(d / math.Pi * paletteSize)
	if idx >= paletteSize {
		idx = paletteSize - 1
	}
	return uint8(idx)
}

func (w *World) rebuildDisplay() {
	angles := w.lat.Angles()
	for i, theta := range angles {
		w.display[i] = encodeDisplayValue(theta)
	}
}
