package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme keeps the dense form readable: smaller padding, slightly
// larger text and high-contrast entries.
type CompactTheme struct{}

var _ fyne.Theme = (*CompactTheme)(nil)

// NewCompactTheme creates the window theme.
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns the color for the specified name and variant.
func (c *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	light := variant == theme.VariantLight
	switch name {
	case theme.ColorNameForeground:
		if light {
			return color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
		}
		return color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}

	case theme.ColorNameDisabled:
		// Read-only result entries stay legible.
		if light {
			return color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
		}
		return color.RGBA{R: 0xD0, G: 0xD0, B: 0xD0, A: 0xFF}

	case theme.ColorNameInputBackground:
		if light {
			return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		}
		return color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xFF}

	case theme.ColorNameInputBorder:
		if light {
			return color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
		}
		return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

	case theme.ColorNameError:
		return color.RGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF} // tomato

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the font resource for the specified text style.
func (c *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon resource for the specified name.
func (c *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
func (c *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 4
	default:
		return theme.DefaultTheme().Size(name)
	}
}
