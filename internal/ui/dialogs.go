package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"zeta/internal/errors"
	"zeta/internal/registry"
	"zeta/internal/util"
)

// fieldLabels names form fields the way the window labels them.
var fieldLabels = map[string]string{
	"lambda":     "decay constant λ",
	"lambda_err": "uncertainty σ(λ)",
	"g":          "geometry factor g",
	"Nd":         "Nd",
	"rho_d":      "ρd",
	"Ns":         "Ns",
	"Ns area":    "Ns area (" + util.UnitArea + ")",
	"Ni":         "Ni",
	"Ni area":    "Ni area (" + util.UnitArea + ")",
	"rho_s":      "ρs",
	"rho_i":      "ρi",
}

// errorTitle and errorMessage turn a calibration error into dialog text.
func errorTitle(err error) string {
	switch {
	case errors.IsIncompatible(err):
		return "Unsuitable standard"
	case errors.IsUnknownStandard(err), errors.IsUnknownMineral(err):
		return "Unknown selection"
	default:
		return "Invalid input"
	}
}

func errorMessage(err error) string {
	var ve *errors.ValidationError
	if errors.As(err, &ve) {
		label, ok := fieldLabels[ve.Field]
		if !ok {
			label = ve.Field
		}
		return fmt.Sprintf("Invalid value of %s:\n%s.", label, ve.Message)
	}
	var ie *errors.IncompatibleStandardMineralError
	if errors.As(err, &ie) {
		return fmt.Sprintf("The %s standard is not calibrated for %s.\nChoose one of: %s.",
			ie.StandardName, ie.MineralName, suitableStandards(ie.Mineral))
	}
	return err.Error()
}

// suitableStandards lists the names of the standards calibrated for mineral.
func suitableStandards(mineral string) string {
	list, err := registry.StandardsFor(mineral)
	if err != nil || len(list) == 0 {
		return "-"
	}
	names := make([]string, 0, len(list))
	for _, std := range list {
		names = append(names, std.Name)
	}
	return strings.Join(names, ", ")
}

// showError shows a modal error dialog over the window.
func (a *App) showError(err error) {
	msg := widget.NewLabel(errorMessage(err))
	msg.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, msg)
	d := dialog.NewCustom(errorTitle(err), "OK", content, a.Window)
	d.Resize(fyne.NewSize(420, 0))
	a.dialog = content
	d.Show()
}

// showAbout shows the version and the reference table fingerprint.
func (a *App) showAbout() {
	content := container.NewVBox(
		widget.NewLabelWithStyle(a.title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Zeta calibration for fission-track dating"),
		widget.NewLabel(fmt.Sprintf("%d standards, %d minerals", len(registry.Standards()), len(registry.Minerals()))),
		widget.NewLabel("Reference tables "+registry.ShortDigest()),
	)
	a.dialog = content
	dialog.NewCustom("About", "Close", content, a.Window).Show()
}

// statusColor maps state colors onto the theme; white follows the theme
// foreground so the status stays readable on light backgrounds.
func statusColor(c color.RGBA) color.Color {
	switch c {
	case util.WHITE:
		return theme.Color(theme.ColorNameForeground)
	case util.RED:
		return theme.Color(theme.ColorNameError)
	case util.GREEN:
		return theme.Color(theme.ColorNameSuccess)
	default:
		return c
	}
}
