package gogeometry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Origin records how a property value entered the snapshot.
type Origin int

const (
	// OriginDerived marks a value computed by the solver.
	OriginDerived Origin = iota
	// OriginUserSet marks the single value most recently edited by the caller.
	OriginUserSet
)

// PropertyValue is a named scalar tagged with its unit class and origin.
type PropertyValue struct {
	Name   string
	Value  float64
	Unit   Unit
	Origin Origin
}

// Snapshot is the complete named-property state of one shape instance. Order
// follows the family registry. A snapshot with Valid() == false must never be
// handed to a caller; solvers either return a fully valid snapshot or an error.
type Snapshot struct {
	family Family
	order  []string
	props  map[string]PropertyValue
	valid  bool
}

// newSnapshot returns an invalid snapshot pre-seeded with the family's
// registry order.
func newSnapshot(f Family) *Snapshot {
	defs := RegistryFor(f)
	s := &Snapshot{
		family: f,
		order:  make([]string, 0, len(defs)),
		props:  make(map[string]PropertyValue, len(defs)),
	}
	for _, d := range defs {
		s.order = append(s.order, d.Name)
		s.props[d.Name] = PropertyValue{Name: d.Name, Unit: d.Unit}
	}
	return s
}

// put stores a derived value. Solvers populate every registry property through
// put and then seal the snapshot with markValid.
func (s *Snapshot) put(name string, v float64) {
	pv, ok := s.props[name]
	if !ok {
		panic(fmt.Sprintf("gogeometry: property %q not registered for %s", name, s.family))
	}
	pv.Value = v
	pv.Origin = OriginDerived
	s.props[name] = pv
}

// markUserSet flags name as the authoritative user-edited property. At most
// one property per resolution cycle carries OriginUserSet.
func (s *Snapshot) markUserSet(name string) {
	for n, pv := range s.props {
		if pv.Origin == OriginUserSet {
			pv.Origin = OriginDerived
			s.props[n] = pv
		}
	}
	if pv, ok := s.props[name]; ok {
		pv.Origin = OriginUserSet
		s.props[name] = pv
	}
}

func (s *Snapshot) markValid() { s.valid = true }

// Family returns the family tag.
func (s *Snapshot) Family() Family { return s.family }

// Valid reports whether every registry property is present and satisfies its
// constraint.
func (s *Snapshot) Valid() bool { return s.valid }

// Value returns the named property value and whether it exists.
func (s *Snapshot) Value(name string) (float64, bool) {
	pv, ok := s.props[name]
	return pv.Value, ok
}

// Get returns the full property record.
func (s *Snapshot) Get(name string) (PropertyValue, bool) {
	pv, ok := s.props[name]
	return pv, ok
}

// val returns the named value, panicking on unknown names. Internal use only:
// solvers read properties they registered themselves.
func (s *Snapshot) val(name string) float64 {
	pv, ok := s.props[name]
	if !ok {
		panic(fmt.Sprintf("gogeometry: property %q not registered for %s", name, s.family))
	}
	return pv.Value
}

// Properties returns all property values in registry order.
func (s *Snapshot) Properties() []PropertyValue {
	out := make([]PropertyValue, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.props[name])
	}
	return out
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		family: s.family,
		order:  append([]string(nil), s.order...),
		props:  make(map[string]PropertyValue, len(s.props)),
		valid:  s.valid,
	}
	for n, pv := range s.props {
		c.props[n] = pv
	}
	return c
}

// snapshotDoc is the serialized form consumed by external persistence
// collaborators. Only the family tag and name/value pairs survive a round
// trip; origins reset to derived.
type snapshotDoc struct {
	Family     string             `yaml:"family"`
	Properties []snapshotDocEntry `yaml:"properties"`
}

type snapshotDocEntry struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// MarshalYAML serializes the snapshot for storage.
func (s *Snapshot) MarshalYAML() (interface{}, error) {
	doc := snapshotDoc{Family: s.family.Name()}
	for _, name := range s.order {
		doc.Properties = append(doc.Properties, snapshotDocEntry{Name: name, Value: s.props[name].Value})
	}
	return doc, nil
}

// EncodeSnapshot renders a snapshot to YAML.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeSnapshot reconstructs a snapshot from YAML produced by
// EncodeSnapshot. The stored values are validated against the family registry
// before being trusted; a stored snapshot that no longer satisfies its
// constraints is rejected.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var doc snapshotDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	f, ok := FamilyFromName(doc.Family)
	if !ok {
		return nil, fmt.Errorf("failed to decode snapshot: unknown family %q", doc.Family)
	}
	s := newSnapshot(f)
	seen := make(map[string]bool, len(doc.Properties))
	for _, e := range doc.Properties {
		if _, ok := s.props[e.Name]; !ok {
			return nil, fmt.Errorf("failed to decode snapshot: property %q not registered for %s", e.Name, f)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("failed to decode snapshot: duplicate property %q", e.Name)
		}
		s.put(e.Name, e.Value)
		seen[e.Name] = true
	}
	for _, name := range s.order {
		if !seen[name] {
			return nil, fmt.Errorf("failed to decode snapshot: missing property %q", name)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	s.markValid()
	return s, nil
}
