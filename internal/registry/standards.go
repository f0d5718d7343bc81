// Package registry holds the fixed reference data used for zeta calibration:
// the geochronology standards with their accepted ages and the mineral types
// they are calibrated for.
//
// The tables are package-level literals populated at init and never modified.
// Every accessor returns copies, so the registry can be read from any
// goroutine without synchronization.
//
// Age sources:
//
//   - DUR  McDowell, McIntosh & Farley (2005), Chemical Geology 214, 249-263.
//   - FC1  Paces & Miller (1993), J. Geophys. Res. 98(B8), 13997-14013.
//   - FCT  Kuiper et al. (2008), Science 320, 500-504;
//     Lanphere & Baadsgaard (2001), Chemical Geology 175, 653-671.
//   - MD   Renne et al. (1998), Chemical Geology 145, 117-152.
//   - MM   Schoene & Bowring (2006), Contrib. Mineral. Petrol. 151, 615-630.
//   - TR   Ganerød et al. (2011), Chemical Geology 286, 222-228.
//   - TEM2 Black et al. (2004), Chemical Geology 205, 115-140.
package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Mineral codes.
const (
	Apatite  = "Ap"
	Zircon   = "Zrn"
	Titanite = "Ttn"
)

// MineralRecord maps a short mineral code to its display name.
type MineralRecord struct {
	Code string
	Name string
}

// StandardRecord describes a reference sample of independently known age.
type StandardRecord struct {
	Code             string
	Name             string
	AgeMa            float64 // accepted age [Ma]
	AgeUncertaintyMa float64 // one-sigma age uncertainty [Ma]

	// Applicability per mineral type.
	Apatite  bool
	Zircon   bool
	Titanite bool
}

// AppliesTo reports whether the standard is calibrated for the mineral code.
// Unknown mineral codes never apply.
func (s StandardRecord) AppliesTo(mineral string) bool {
	switch mineral {
	case Apatite:
		return s.Apatite
	case Zircon:
		return s.Zircon
	case Titanite:
		return s.Titanite
	default:
		return false
	}
}

// Label returns the display form used in selection lists,
// e.g. "Durango (31.44±0.018 Ma)" or "Duluth Complex (1099.0±0.6 Ma)".
func (s StandardRecord) Label() string {
	return fmt.Sprintf("%s (%s±%s Ma)", s.Name, formatAge(s.AgeMa), formatAge(s.AgeUncertaintyMa))
}

// shortLabel is Label without the trailing ".0" on whole ages.
func (s StandardRecord) shortLabel() string {
	return fmt.Sprintf("%s (%s±%s Ma)", s.Name,
		strconv.FormatFloat(s.AgeMa, 'f', -1, 64),
		strconv.FormatFloat(s.AgeUncertaintyMa, 'f', -1, 64))
}

// formatAge renders an age with at least one decimal.
func formatAge(v float64) string {
	a := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(a, ".") {
		a += ".0"
	}
	return a
}

// minerals is ordered as presented to users.
var minerals = [...]MineralRecord{
	{Code: Apatite, Name: "Apatite"},
	{Code: Zircon, Name: "Zircon"},
	{Code: Titanite, Name: "Titanite"},
}

// standards is ordered as presented to users.
// Note: TEM2 applicability to minerals other than zircon is unverified.
var standards = [...]StandardRecord{
	{Code: "FCT", Name: "Fish Canyon Tuff", AgeMa: 28.201, AgeUncertaintyMa: 0.012, Apatite: true, Zircon: true, Titanite: true},
	{Code: "FC1", Name: "Duluth Complex", AgeMa: 1099.0, AgeUncertaintyMa: 0.6, Apatite: true, Zircon: true},
	{Code: "DUR", Name: "Durango", AgeMa: 31.44, AgeUncertaintyMa: 0.018, Apatite: true},
	{Code: "MD", Name: "Mount Dromedary", AgeMa: 99.12, AgeUncertaintyMa: 0.14, Apatite: true, Zircon: true},
	{Code: "MM", Name: "Mount McClure", AgeMa: 523.51, AgeUncertaintyMa: 1.47, Apatite: true, Zircon: true, Titanite: true},
	{Code: "TEM2", Name: "TEMORA2", AgeMa: 416.78, AgeUncertaintyMa: 0.33, Zircon: true},
	{Code: "TR", Name: "Tardree Rhyolite", AgeMa: 61.23, AgeUncertaintyMa: 0.11, Zircon: true},
}

// Index maps built once at init.
var (
	standardIndex = make(map[string]int, len(standards))
	mineralIndex  = make(map[string]int, len(minerals))
)

func init() {
	for i, s := range standards {
		standardIndex[s.Code] = i
	}
	for i, m := range minerals {
		mineralIndex[m.Code] = i
	}
}
