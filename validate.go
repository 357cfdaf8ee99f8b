package gogeometry

import (
	"fmt"
	"strings"
)

// Validate checks every registry property of the snapshot's family for
// presence and constraint satisfaction, and returns an error describing all
// problems found, or nil if the snapshot is structurally sound.
func (s *Snapshot) Validate() error {
	var errs []string

	for _, d := range RegistryFor(s.family) {
		pv, ok := s.props[d.Name]
		if !ok {
			errs = append(errs, fmt.Sprintf("property %q is missing", d.Name))
			continue
		}
		if pv.Unit != d.Unit {
			errs = append(errs, fmt.Sprintf("property %q has unit %s, want %s", d.Name, pv.Unit, d.Unit))
		}
		if err := checkConstraint(s.family, d, pv.Value); err != nil {
			errs = append(errs, err.Error())
		}
	}

	userSet := 0
	for _, pv := range s.props {
		if pv.Origin == OriginUserSet {
			userSet++
		}
	}
	if userSet > 1 {
		errs = append(errs, fmt.Sprintf("%d properties flagged user-set, at most 1 allowed", userSet))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}
