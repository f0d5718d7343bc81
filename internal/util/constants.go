// Package util provides display constants and number formatting shared by
// the zeta shells.
//
// This package contains:
//   - Unit labels for calibration quantities
//   - Color constants for UI status messages and entry highlighting
//   - Fixed-point and rule formatting used by console and form output
//
// All utilities are stateless and thread-safe.
package util

import "image/color"

// Unit labels
const (
	UnitZeta    = "Ma.cm²"
	UnitAge     = "Ma"
	UnitDecay   = "yr^-1"
	UnitArea    = "cm²"
	UnitPercent = "%"
)

// Console layout
const (
	RuleWidth = 80 // banner width when stdout is not a terminal
)

// Color constants for UI status messages
var (
	WHITE  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	GREEN  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	YELLOW = color.RGBA{0xcc, 0x70, 0x00, 0xff} // Dark amber for better readability

	INVALID = color.RGBA{0xff, 0x63, 0x47, 0xff} // tomato marker beside rejected entries
)
