package terminal

import "os"

// ColorMode selects how the renderer produces colors
type ColorMode uint8

const (
	// ColorMode256 restricts the renderer to the 256-color palette
	ColorMode256 ColorMode = iota
	// ColorModeTrueColor allows 24-bit RGB colors
	ColorModeTrueColor
)

// DetectColorMode inspects the environment for truecolor support.
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	return ColorMode256
}
