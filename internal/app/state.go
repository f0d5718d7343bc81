// Package app connects the zeta shells to the calculation core.
//
// This package serves two main purposes:
//
//  1. Calibration (request.go, calibrate.go, report.go):
//     Form and Request carry user input from either shell, Calibrate
//     resolves, validates and computes it, and Report renders the outcome
//     as console lines or JSON.
//
//  2. Desktop state (state.go, binding.go):
//     State holds the form, the last report and the status line behind
//     the desktop window. Bindings mirror State into Fyne data bindings.
//     All state access is thread-safe via sync.RWMutex.
package app

import (
	"image/color"
	"sync"

	"zeta/internal/errors"
	"zeta/internal/util"
)

// Status texts
const (
	StatusReady    = "Ready"
	StatusComputed = "Calibration computed"
)

// State holds the desktop form and the outcome of the last calibration.
type State struct {
	mu sync.RWMutex

	Form   Form
	Report *Report // nil until a calibration succeeds

	// InvalidField names the form field rejected by the last run, if any.
	InvalidField string

	Status      string
	StatusColor color.RGBA
}

// NewState creates a state with the default form.
func NewState() *State {
	return &State{
		Form:        DefaultForm(),
		Status:      StatusReady,
		StatusColor: util.WHITE,
	}
}

// Reset restores the default form, selections and constants included.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Form = DefaultForm()
	s.resetOutcomeLocked()
}

// Clear empties the measurement fields and results but keeps the selected
// standard, mineral and constants.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Form.ND = ""
	s.Form.RhoD = ""
	s.Form.NS = ""
	s.Form.NSArea = ""
	s.Form.NI = ""
	s.Form.NIArea = ""
	s.resetOutcomeLocked()
}

// resetOutcomeLocked must be called with the lock held.
func (s *State) resetOutcomeLocked() {
	s.Report = nil
	s.InvalidField = ""
	s.Status = StatusReady
	s.StatusColor = util.WHITE
}

// SetForm replaces the form text. The previous outcome is kept until the
// next Calculate.
func (s *State) SetForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Form = f
}

// Snapshot returns a copy of the current form.
func (s *State) Snapshot() Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Form
}

// LastReport returns the report of the last successful calibration.
func (s *State) LastReport() *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Report
}

// Outcome returns the status line and the field rejected by the last run.
func (s *State) Outcome() (status string, c color.RGBA, invalidField string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Status, s.StatusColor, s.InvalidField
}

// SetStatus updates the status line.
func (s *State) SetStatus(text string, c color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = text
	s.StatusColor = c
}

// Calculate parses the current form and runs a calibration. On failure the
// previous report is dropped, the status shows the error and InvalidField
// names the offending entry when the error is a ValidationError.
func (s *State) Calculate() (*Report, error) {
	form := s.Snapshot()

	report, err := s.run(form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.Report = nil
		s.InvalidField = ""
		var ve *errors.ValidationError
		if errors.As(err, &ve) {
			s.InvalidField = ve.Field
		}
		s.Status = err.Error()
		s.StatusColor = util.RED
		return nil, err
	}
	s.Report = report
	s.InvalidField = ""
	s.Status = StatusComputed
	s.StatusColor = util.GREEN
	return report, nil
}

func (s *State) run(form Form) (*Report, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	return Calibrate(req)
}
