package app

import (
	"strconv"
	"strings"

	"zeta/internal/errors"
	"zeta/internal/util"
	"zeta/internal/zeta"
)

// Settings holds the overridable calibration constants.
type Settings struct {
	DecayConstant            float64 // λ [yr^-1]
	DecayConstantUncertainty float64 // σ(λ) [yr^-1]
	GeometryFactor           float64 // g
}

// DefaultSettings returns the 238U decay constant and the external-detector
// geometry factor.
func DefaultSettings() Settings {
	return Settings{
		DecayConstant:            zeta.DefaultDecayConstant,
		DecayConstantUncertainty: zeta.DefaultDecayConstantUncertainty,
		GeometryFactor:           zeta.DefaultGeometryFactor,
	}
}

// Request is a typed calibration request as collected by a shell.
//
// Standard and Mineral may be codes, display names or labels.
// With FromAreas set, RhoS and RhoI are ignored and derived from
// Ns/NSArea and Ni/NIArea instead.
type Request struct {
	Standard string
	Mineral  string
	Settings Settings

	NS, NI, ND       int
	RhoS, RhoI, RhoD float64

	FromAreas      bool
	NSArea, NIArea float64 // counted areas [cm²]
}

// Form is the raw text of the desktop form, one field per entry widget.
// Empty constant fields fall back to DefaultSettings.
type Form struct {
	Mineral  string
	Standard string

	Lambda    string
	LambdaErr string
	G         string

	ND   string
	RhoD string

	NS     string
	NSArea string

	NI     string
	NIArea string
}

// DefaultForm returns a form with the default constants filled in and
// the first mineral and Durango preselected.
func DefaultForm() Form {
	s := DefaultSettings()
	return Form{
		Mineral:   "Ap",
		Standard:  "DUR",
		Lambda:    util.Compact(s.DecayConstant),
		LambdaErr: util.Compact(s.DecayConstantUncertainty),
		G:         util.Compact(s.GeometryFactor),
	}
}

// Request parses the form text. Densities are always derived from counted
// areas on the form. The first field that fails to parse is reported as a
// ValidationError naming it.
func (f Form) Request() (Request, error) {
	req := Request{
		Standard:  f.Standard,
		Mineral:   f.Mineral,
		Settings:  DefaultSettings(),
		FromAreas: true,
	}

	var err error
	if req.Settings.DecayConstant, err = parseFloat("lambda", f.Lambda, req.Settings.DecayConstant); err != nil {
		return Request{}, err
	}
	if req.Settings.DecayConstantUncertainty, err = parseFloat("lambda_err", f.LambdaErr, req.Settings.DecayConstantUncertainty); err != nil {
		return Request{}, err
	}
	if req.Settings.GeometryFactor, err = parseFloat("g", f.G, req.Settings.GeometryFactor); err != nil {
		return Request{}, err
	}

	if req.ND, err = parseCount("Nd", f.ND); err != nil {
		return Request{}, err
	}
	if req.RhoD, err = parseFloat("rho_d", f.RhoD, 0); err != nil {
		return Request{}, err
	}
	if req.NS, err = parseCount("Ns", f.NS); err != nil {
		return Request{}, err
	}
	if req.NSArea, err = parseFloat("Ns area", f.NSArea, 0); err != nil {
		return Request{}, err
	}
	if req.NI, err = parseCount("Ni", f.NI); err != nil {
		return Request{}, err
	}
	if req.NIArea, err = parseFloat("Ni area", f.NIArea, 0); err != nil {
		return Request{}, err
	}
	return req, nil
}

// parseCount parses a track count; the text must be an integer.
func parseCount(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.NewValidationError(field, "value is required")
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.NewValidationError(field, "value must be an integer")
	}
	return n, nil
}

// parseFloat parses a real number; empty text yields def when def is
// non-zero and is rejected otherwise.
func parseFloat(field, text string, def float64) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		if def != 0 {
			return def, nil
		}
		return 0, errors.NewValidationError(field, "value is required")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.NewValidationError(field, "value must be a number")
	}
	return v, nil
}
