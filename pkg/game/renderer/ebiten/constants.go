// Package ebiten provides an Ebiten-based 2D graphical renderer for Extraction.
package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground      = color.RGBA{10, 12, 10, 255}    // Near black
	colorWall            = color.RGBA{34, 68, 34, 255}    // Dark phosphor green
	colorWallEdge        = color.RGBA{60, 120, 60, 255}   // Lighter wall outline
	colorFloor           = color.RGBA{16, 24, 16, 255}    // Floor between walls
	colorGoal            = color.RGBA{0, 255, 120, 255}   // Extraction zone, pulsed
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPlayerFacing    = color.RGBA{220, 255, 220, 255} // Direction marker
	colorPanelBackground = color.RGBA{0, 20, 0, 200}      // Semi-transparent dark
	colorScanline        = color.RGBA{0, 255, 0, 24}      // Sweeping CRT line
	colorNoise           = color.RGBA{0, 255, 0, 40}      // Static specks
)

// Window and layout
const (
	screenWidth  = 800
	screenHeight = 600

	// ebitenutil debug font cell
	glyphWidth  = 6
	glyphHeight = 16

	panelPadding = 8
	hudMargin    = 10

	// noiseDots is the number of static specks drawn per frame
	noiseDots = 120
)

// ebiten runs Update at this rate; one game tick per update
const ticksPerSecond = 60
