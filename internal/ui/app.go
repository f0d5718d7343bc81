// Package ui provides the zeta desktop window using Fyne.
//
// The window is a single calibration form:
//
//   - Mineral and age standard selection
//   - Decay constant, its uncertainty and the geometry factor
//   - Track counts with counted areas for Ns and Ni, Nd with ρd
//   - Derived densities and ratios, then ζ, σ(ζ) and σ(ζ) in percent
//
// Form text lives in internal/app.State and is mirrored into the widgets
// through internal/app.Bindings. Calculate and Clear act on the State and
// then resynchronize the bindings.
package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"zeta/internal/app"
	"zeta/internal/log"
	"zeta/internal/registry"
	"zeta/internal/util"
)

// appID identifies the application to Fyne preferences and storage.
const appID = "io.github.zeta"

// App represents the desktop application.
type App struct {
	Window  fyne.Window
	Version string

	fyneApp fyne.App

	// Application state
	State    *app.State
	bindings *app.Bindings

	mineralSelect  *widget.Select
	standardSelect *widget.Select
	markers        map[string]*FieldMarker
	status         *StatusLabel
	calcButton     *TooltipButton
	clearButton    *TooltipButton
	aboutButton    *TooltipButton

	// Last dialog shown, kept for tests.
	dialog fyne.CanvasObject
}

// NewDesktopApp starts the Fyne application with the compact theme.
// Bindings need a running Fyne app, so call it before NewApp.
func NewDesktopApp() fyne.App {
	fa := fyneapp.NewWithID(appID)
	fa.Settings().SetTheme(NewCompactTheme())
	return fa
}

// NewApp creates the application with the default form on top of fa.
func NewApp(fa fyne.App, version string) *App {
	a := &App{
		Version:  version,
		fyneApp:  fa,
		State:    app.NewState(),
		bindings: app.NewBindings(),
		markers:  make(map[string]*FieldMarker),
	}
	a.bindings.SyncFromState(a.State)
	return a
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	a.buildWindow()
	log.Info("desktop window opened", log.String("version", a.Version))
	a.Window.ShowAndRun()
}

// title is the window title, e.g. "Zeta 0.9.0".
func (a *App) title() string {
	return "Zeta " + strings.TrimPrefix(a.Version, "v")
}

func (a *App) buildWindow() {
	a.Window = a.fyneApp.NewWindow(a.title())
	a.Window.SetContent(a.buildContent())
	a.Window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			a.onCalculate()
		}
	})
	a.Window.Resize(fyne.NewSize(680, 0))
	a.refresh()
}

func (a *App) buildContent() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Zeta Factor Calculation", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	a.calcButton = NewTooltipButton("Calculate", "Compute zeta from the form (Enter)", a.onCalculate)
	a.calcButton.Importance = widget.HighImportance
	a.clearButton = NewTooltipButton("Clear all", "Clear counts, areas and results", a.onClear)
	a.aboutButton = NewTooltipButton("About", "Version and reference tables", a.showAbout)

	_, c, _ := a.State.Outcome()
	a.status = NewStatusLabel(app.StatusReady, statusColor(c))

	return container.NewPadded(container.NewVBox(
		title,
		widget.NewCard("", "Constants", a.buildConstants()),
		widget.NewCard("", "Measurements", a.buildMeasurements()),
		widget.NewCard("", "Result", a.buildResults()),
		container.NewGridWithColumns(3, a.calcButton, a.clearButton, a.aboutButton),
		a.status,
	))
}

func (a *App) buildConstants() fyne.CanvasObject {
	a.mineralSelect = widget.NewSelect(mineralOptions(), func(name string) {
		if m, err := registry.ResolveMineral(name); err == nil {
			_ = a.bindings.Form.Mineral.Set(m.Code)
		}
	})
	a.standardSelect = widget.NewSelect(standardOptions(), func(label string) {
		if s, err := registry.ResolveStandard(label); err == nil {
			_ = a.bindings.Form.Standard.Set(s.Code)
		}
	})

	f := a.bindings.Form
	selection := widget.NewForm(
		widget.NewFormItem("Mineral", a.mineralSelect),
		widget.NewFormItem("Standard", a.standardSelect),
	)
	constants := widget.NewForm(
		widget.NewFormItem("λ (238U) ["+util.UnitDecay+"]", a.marked("lambda", NewNumberEntry(f.Lambda, ""))),
		widget.NewFormItem("σ(λ) ["+util.UnitDecay+"]", a.marked("lambda_err", NewNumberEntry(f.LambdaErr, ""))),
		widget.NewFormItem("Geometry factor g", a.marked("g", NewNumberEntry(f.G, ""))),
	)
	return container.NewGridWithColumns(2, selection, constants)
}

func (a *App) buildMeasurements() fyne.CanvasObject {
	f := a.bindings.Form
	r := a.bindings.Result
	header := func(text string) fyne.CanvasObject {
		return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	empty := func() fyne.CanvasObject { return widget.NewLabel("") }

	return container.NewGridWithColumns(4,
		empty(), header("Tracks"), header("Area ["+util.UnitArea+"]"), header("ρ [10^6 cm^-2]"),

		widget.NewLabel("Nd"),
		a.marked("Nd", NewNumberEntry(f.ND, "count")),
		empty(),
		a.marked("rho_d", NewNumberEntry(f.RhoD, "ρd")),

		widget.NewLabel("Ns"),
		a.marked("Ns", NewNumberEntry(f.NS, "count")),
		a.marked("Ns area", NewNumberEntry(f.NSArea, "area")),
		NewResultEntry(r.RhoS),

		widget.NewLabel("Ni"),
		a.marked("Ni", NewNumberEntry(f.NI, "count")),
		a.marked("Ni area", NewNumberEntry(f.NIArea, "area")),
		NewResultEntry(r.RhoI),

		widget.NewLabel("Ns/Ni"),
		NewResultEntry(r.CountRatio),
		empty(),
		NewResultEntry(r.RhoRatio),
	)
}

func (a *App) buildResults() fyne.CanvasObject {
	r := a.bindings.Result
	return container.NewGridWithColumns(3,
		widget.NewForm(widget.NewFormItem("ζ ["+util.UnitZeta+"]", NewResultEntry(r.Zeta))),
		widget.NewForm(widget.NewFormItem("σ(ζ) ["+util.UnitZeta+"]", NewResultEntry(r.SigmaZeta))),
		widget.NewForm(widget.NewFormItem("σ(ζ) ["+util.UnitPercent+"]", NewResultEntry(r.RelativeSigma))),
	)
}

// marked places a FieldMarker for field after the entry.
func (a *App) marked(field string, entry fyne.CanvasObject) fyne.CanvasObject {
	m := NewFieldMarker()
	a.markers[field] = m
	return container.NewBorder(nil, nil, nil, m, entry)
}

func (a *App) onCalculate() {
	a.bindings.SyncToState(a.State)
	report, err := a.State.Calculate()
	a.refresh()
	if err != nil {
		a.showError(err)
		return
	}
	log.Debug("form calculated", log.Float64("zeta", report.Result.Zeta))
}

func (a *App) onClear() {
	a.State.Clear()
	a.refresh()
}

// refresh brings bindings, selects, markers and status in line with State.
func (a *App) refresh() {
	a.bindings.SyncFromState(a.State)

	form := a.State.Snapshot()
	if a.mineralSelect != nil {
		if m, err := registry.ResolveMineral(form.Mineral); err == nil {
			a.mineralSelect.SetSelected(m.Name)
		}
	}
	if a.standardSelect != nil {
		if s, err := registry.ResolveStandard(form.Standard); err == nil {
			a.standardSelect.SetSelected(s.Label())
		}
	}

	status, c, invalid := a.State.Outcome()
	for field, m := range a.markers {
		m.SetInvalid(field == invalid)
	}
	if a.status != nil {
		a.status.Set(status, statusColor(c))
	}
}

// mineralOptions lists mineral names in registry order.
func mineralOptions() []string {
	var names []string
	for _, m := range registry.Minerals() {
		names = append(names, m.Name)
	}
	return names
}

// standardOptions lists standard labels in registry order.
func standardOptions() []string {
	var labels []string
	for _, s := range registry.Standards() {
		labels = append(labels, s.Label())
	}
	return labels
}
