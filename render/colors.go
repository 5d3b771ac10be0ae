package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Help text and grid
	RgbBody       = tcell.NewRGBColor(255, 165, 0)   // Orange body marker
	RgbDashing    = tcell.NewRGBColor(100, 150, 255) // Bright blue while dashing
	RgbRewind     = tcell.NewRGBColor(200, 80, 255)  // Violet while rewinding
	RgbChargeFull = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbChargeUsed = tcell.NewRGBColor(180, 50, 50)   // Dark red
	RgbHealth     = tcell.NewRGBColor(255, 80, 80)   // Normal red

	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)
)
