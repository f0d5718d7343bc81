package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"zeta/internal/errors"
)

// fold normalizes a user-typed query for comparison: surrounding space is
// trimmed, the text is NFKC-normalized and case-folded, and the "+-" spelling
// of the plus-minus sign is accepted.
func fold(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "+-", "±")
	s = norm.NFKC.String(s)
	// A Caser keeps state, so one is built per call.
	return cases.Fold().String(s)
}

// ResolveStandard finds a standard by code, display name or label,
// ignoring case. Whole ages in a label may be written with or without
// a trailing ".0". The error for an unmatched query is an
// UnknownStandardError carrying the query as typed.
func ResolveStandard(query string) (StandardRecord, error) {
	if s, err := LookupStandard(query); err == nil {
		return s, nil
	}
	q := fold(query)
	if q == "" {
		return StandardRecord{}, errors.NewUnknownStandardError(query)
	}
	for _, s := range standards {
		if q == fold(s.Code) || q == fold(s.Name) || q == fold(s.Label()) || q == fold(s.shortLabel()) {
			return s, nil
		}
	}
	return StandardRecord{}, errors.NewUnknownStandardError(query)
}

// ResolveMineral finds a mineral by code or display name, ignoring case.
func ResolveMineral(query string) (MineralRecord, error) {
	if m, err := LookupMineral(query); err == nil {
		return m, nil
	}
	q := fold(query)
	if q == "" {
		return MineralRecord{}, errors.NewUnknownMineralError(query)
	}
	for _, m := range minerals {
		if q == fold(m.Code) || q == fold(m.Name) {
			return m, nil
		}
	}
	return MineralRecord{}, errors.NewUnknownMineralError(query)
}
