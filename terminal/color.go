package terminal

// Color is a palette index 0-255, or ColorDefault for the terminal's own color
type Color int16

// ColorDefault leaves the terminal's default foreground or background in place
const ColorDefault Color = -1

// PaletteColor selects a palette entry
func PaletteColor(i uint8) Color {
	return Color(i)
}

// IsDefault reports whether c defers to the terminal default
func (c Color) IsDefault() bool {
	return c < 0
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBColor maps a 24-bit color to the nearest xterm-256 palette entry
func RGBColor(c RGB) Color {
	return Color(RGBTo256(c))
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeLevel returns the cube index 0-5 nearest to v
func cubeLevel(v int) int {
	best := 0
	for j := 1; j < len(cubeValues); j++ {
		if abs(v-cubeValues[j]) < abs(v-cubeValues[best]) {
			best = j
		}
	}
	return best
}

// RGBTo256 converts RGB to nearest 256-color palette index
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)
	cube := uint8(16 + 36*cr + 6*cg + cb)

	// Near-gray inputs may sit closer to the 24-step ramp than to the cube
	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	step := min((gray-8)/10, 23)
	if step < 0 {
		step = 0
	}
	level := 8 + step*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-cubeValues[cr]) + abs(g-cubeValues[cg]) + abs(b-cubeValues[cb])
	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}
