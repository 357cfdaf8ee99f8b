package gogeometry

import "fmt"

// ErrorKind classifies a SolveError.
type ErrorKind int

const (
	// KindDomainViolation: a single property value breaks its own constraint
	// (negative length, angle out of range). The edit is rejected.
	KindDomainViolation ErrorKind = iota
	// KindUnderdetermined: fewer independent values supplied than the family's
	// degrees of freedom.
	KindUnderdetermined
	// KindInconsistent: enough values supplied, but they admit no common
	// solution within tolerance.
	KindInconsistent
	// KindImpossible: individually valid, jointly sufficient values that
	// violate a geometric law (triangle inequality, radius ordering, ...).
	KindImpossible
	// KindInternalConsistency: synthesized mesh metrics disagree with the
	// solver's scalar metrics. A defect, never a user error.
	KindInternalConsistency
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindDomainViolation:
		return "domain violation"
	case KindUnderdetermined:
		return "underdetermined"
	case KindInconsistent:
		return "inconsistent"
	case KindImpossible:
		return "impossible"
	case KindInternalConsistency:
		return "internal consistency"
	}
	return "unknown"
}

// SolveError is the failure type returned by every solver and synthesizer in
// the package. Property names the offending property where one exists.
type SolveError struct {
	Kind     ErrorKind
	Family   Family
	Property string
	Message  string
}

func (e *SolveError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Family, e.Kind, e.Property, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Family, e.Kind, e.Message)
}

func domainErr(f Family, prop, msg string) *SolveError {
	return &SolveError{Kind: KindDomainViolation, Family: f, Property: prop, Message: msg}
}

func underdeterminedErr(f Family, msg string) *SolveError {
	return &SolveError{Kind: KindUnderdetermined, Family: f, Message: msg}
}

func inconsistentErr(f Family, prop, msg string) *SolveError {
	return &SolveError{Kind: KindInconsistent, Family: f, Property: prop, Message: msg}
}

func impossibleErr(f Family, msg string) *SolveError {
	return &SolveError{Kind: KindImpossible, Family: f, Message: msg}
}

func internalErr(f Family, msg string) *SolveError {
	return &SolveError{Kind: KindInternalConsistency, Family: f, Message: msg}
}

// errKind extracts the ErrorKind from err, or -1 if err is not a SolveError.
func errKind(err error) ErrorKind {
	if se, ok := err.(*SolveError); ok {
		return se.Kind
	}
	return -1
}

// IsDomainViolation reports whether err is a domain-violation SolveError.
func IsDomainViolation(err error) bool { return errKind(err) == KindDomainViolation }

// IsUnderdetermined reports whether err is an underdetermined SolveError.
func IsUnderdetermined(err error) bool { return errKind(err) == KindUnderdetermined }

// IsInconsistent reports whether err is an inconsistent SolveError.
func IsInconsistent(err error) bool { return errKind(err) == KindInconsistent }

// IsImpossible reports whether err is an impossible-shape SolveError.
func IsImpossible(err error) bool { return errKind(err) == KindImpossible }

// IsInternalConsistency reports whether err is an internal-consistency SolveError.
func IsInternalConsistency(err error) bool { return errKind(err) == KindInternalConsistency }
