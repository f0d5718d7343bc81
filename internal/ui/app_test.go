package ui

import (
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"zeta/internal/app"
	"zeta/internal/errors"
)

// createTestApp builds the window the way the desktop entry point does:
// the Fyne app first, then the App on top of it.
func createTestApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(fyne.CurrentApp(), "v0.9.0")
	a.buildWindow()
	return a
}

// fillDurango enters the Durango apatite measurement, counted over equal
// areas.
func fillDurango(t *testing.T, a *App) {
	t.Helper()
	f := a.bindings.Form
	for _, set := range []struct {
		name string
		err  error
	}{
		{"Nd", f.ND.Set("5881")},
		{"rho_d", f.RhoD.Set("0.66973")},
		{"Ns", f.NS.Set("769")},
		{"Ns area", f.NSArea.Set("0.003656")},
		{"Ni", f.NI.Set("1960")},
		{"Ni area", f.NIArea.Set("0.003656")},
	} {
		if set.err != nil {
			t.Fatalf("setting %s: %v", set.name, set.err)
		}
	}
}

func TestNewApp(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	if a.Window.Title() != "Zeta 0.9.0" {
		t.Errorf("title = %q", a.Window.Title())
	}
	if a.mineralSelect.Selected != "Apatite" {
		t.Errorf("mineral = %q, want Apatite", a.mineralSelect.Selected)
	}
	if a.standardSelect.Selected != "Durango (31.44±0.018 Ma)" {
		t.Errorf("standard = %q", a.standardSelect.Selected)
	}
	if len(a.standardSelect.Options) != 7 || len(a.mineralSelect.Options) != 3 {
		t.Errorf("options: %d standards, %d minerals", len(a.standardSelect.Options), len(a.mineralSelect.Options))
	}
	if v, _ := a.bindings.Form.Lambda.Get(); v != "1.55125e-10" {
		t.Errorf("lambda = %q", v)
	}
	if a.status.Text() != app.StatusReady {
		t.Errorf("status = %q", a.status.Text())
	}
}

func TestNewAppBindsToGivenApp(t *testing.T) {
	fa := test.NewApp()
	defer test.NewApp()

	a := NewApp(fa, "v0.9.0")
	if a.fyneApp != fa {
		t.Fatal("App should keep the Fyne app it was given")
	}
	if v, _ := a.bindings.Result.Status.Get(); v != app.StatusReady {
		t.Errorf("status binding = %q, want %q", v, app.StatusReady)
	}
	if v, _ := a.bindings.Form.Standard.Get(); v != "DUR" {
		t.Errorf("standard binding = %q, want DUR", v)
	}

	a.buildWindow()
	if a.Window == nil || a.Window.Title() != "Zeta 0.9.0" {
		t.Error("window not built on the given app")
	}
}

func TestCalculate(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	a.onCalculate()

	checks := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"zeta", a.bindings.Result.Zeta.Get, "239.88"},
		{"sigma", a.bindings.Result.SigmaZeta.Get, "10.68"},
		{"relative", a.bindings.Result.RelativeSigma.Get, "4.45"},
		{"rho_s", a.bindings.Result.RhoS.Get, "0.210339"},
		{"rho_i", a.bindings.Result.RhoI.Get, "0.536105"},
		{"ratio", a.bindings.Result.RhoRatio.Get, "0.392347"},
	}
	for _, c := range checks {
		if v, _ := c.get(); v != c.want {
			t.Errorf("%s = %q, want %q", c.name, v, c.want)
		}
	}
	if a.status.Text() != app.StatusComputed {
		t.Errorf("status = %q", a.status.Text())
	}
	if a.dialog != nil {
		t.Error("no dialog expected after a successful calculation")
	}
}

func TestCalculateGeometryFactor(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	_ = a.bindings.Form.G.Set("1")
	a.onCalculate()

	if v, _ := a.bindings.Result.Zeta.Get(); v != "119.94" {
		t.Errorf("zeta at g=1 = %q, want 119.94", v)
	}
}

func TestCalculateInvalidField(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	_ = a.bindings.Form.ND.Set("58.81")
	a.onCalculate()

	if !a.markers["Nd"].Invalid() {
		t.Error("Nd marker should be shown")
	}
	for field, m := range a.markers {
		if field != "Nd" && m.Invalid() {
			t.Errorf("marker %s should be hidden", field)
		}
	}
	if v, _ := a.bindings.Result.Zeta.Get(); v != "" {
		t.Errorf("zeta = %q, want empty after failure", v)
	}
	if a.dialog == nil {
		t.Fatal("error dialog expected")
	}

	// Fixing the field clears the marker.
	_ = a.bindings.Form.ND.Set("5881")
	a.onCalculate()
	if a.markers["Nd"].Invalid() {
		t.Error("Nd marker should be hidden after a successful run")
	}
}

func TestCalculateIncompatible(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	a.mineralSelect.SetSelected("Titanite")
	if v, _ := a.bindings.Form.Mineral.Get(); v != "Ttn" {
		t.Fatalf("mineral binding = %q, want Ttn", v)
	}
	a.onCalculate()

	_, _, invalid := a.State.Outcome()
	if invalid != "" {
		t.Errorf("InvalidField = %q, want none", invalid)
	}
	if a.State.LastReport() != nil {
		t.Error("no report expected")
	}
	if a.dialog == nil {
		t.Error("error dialog expected")
	}
}

func TestClear(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	a.standardSelect.SetSelected("Fish Canyon Tuff (28.201±0.012 Ma)")
	a.onCalculate()
	a.onClear()

	for name, b := range map[string]interface{ Get() (string, error) }{
		"Nd":   a.bindings.Form.ND,
		"Ns":   a.bindings.Form.NS,
		"Ni":   a.bindings.Form.NI,
		"zeta": a.bindings.Result.Zeta,
		"rhoS": a.bindings.Result.RhoS,
	} {
		if v, _ := b.Get(); v != "" {
			t.Errorf("%s = %q after Clear, want empty", name, v)
		}
	}
	if a.standardSelect.Selected != "Fish Canyon Tuff (28.201±0.012 Ma)" {
		t.Errorf("Clear should keep the standard, got %q", a.standardSelect.Selected)
	}
	if v, _ := a.bindings.Form.G.Get(); v != "0.5" {
		t.Errorf("Clear should keep constants, g = %q", v)
	}
	if a.status.Text() != app.StatusReady {
		t.Errorf("status = %q", a.status.Text())
	}
}

func TestEnterKeyCalculates(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	fillDurango(t, a)
	a.Window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if a.State.LastReport() == nil {
		t.Error("Enter should run the calculation")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantText  string
	}{
		{
			name:      "validation",
			err:       errors.NewValidationError("g", "value must be a number"),
			wantTitle: "Invalid input",
			wantText:  "geometry factor g",
		},
		{
			name:      "incompatible",
			err:       errors.NewIncompatibleError("DUR", "Durango", "Zrn", "Zircon"),
			wantTitle: "Unsuitable standard",
			wantText:  "TEMORA2",
		},
		{
			name:      "unknown standard",
			err:       errors.NewUnknownStandardError("XYZ"),
			wantTitle: "Unknown selection",
			wantText:  "XYZ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorTitle(tt.err); got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
			if got := errorMessage(tt.err); !strings.Contains(got, tt.wantText) {
				t.Errorf("message = %q, want it to mention %q", got, tt.wantText)
			}
		})
	}
}

func TestAbout(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	a := createTestApp(t)
	a.showAbout()
	if a.dialog == nil {
		t.Fatal("about dialog expected")
	}
}

func TestFieldMarker(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	m := NewFieldMarker()
	if m.Invalid() {
		t.Error("new marker should be hidden")
	}
	m.SetInvalid(true)
	if !m.Invalid() {
		t.Error("marker should be shown")
	}
	if len(m.CreateRenderer().Objects()) != 1 {
		t.Error("marker renders a single dot")
	}
	if s := m.MinSize(); s.Width != 16 || s.Height != 16 {
		t.Errorf("MinSize = %v", s)
	}
}

func TestStatusLabel(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	l := NewStatusLabel("Ready", color.Black)
	l.Set("Calibration computed", color.White)
	if l.Text() != "Calibration computed" {
		t.Errorf("text = %q", l.Text())
	}
}
