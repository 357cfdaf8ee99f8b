package gogeometry

import (
	"log/slog"

	"github.com/google/uuid"
)

// Calculator is the session facade over the pure solvers. It owns one shape
// instance and guarantees the caller always observes a complete, consistent
// snapshot: an edit either replaces the whole snapshot atomically or leaves
// the previous one untouched.
//
// A Calculator is not safe for concurrent use; give each session its own.
type Calculator struct {
	id     uuid.UUID
	logger *slog.Logger
	snap   *Snapshot
}

// New starts a session on the family's canonical default geometry.
func New(f Family) *Calculator {
	return &Calculator{
		id:     uuid.New(),
		logger: slog.Default(),
		snap:   DefaultSnapshot(f),
	}
}

// ID returns the session identifier.
func (c *Calculator) ID() uuid.UUID { return c.id }

// SetLogger replaces the logger used for internal-consistency reports.
func (c *Calculator) SetLogger(l *slog.Logger) *Calculator {
	c.logger = l
	return c
}

// Family returns the family of the held shape.
func (c *Calculator) Family() Family { return c.snap.Family() }

// Snapshot returns a copy of the current state. Callers may hold it across
// later edits.
func (c *Calculator) Snapshot() *Snapshot { return c.snap.Clone() }

// Reset restores the family's canonical default geometry.
func (c *Calculator) Reset() {
	c.snap = DefaultSnapshot(c.snap.Family())
}

// SetProperty applies one edit. Setting a property to the value it already
// holds is a no-op. On any solver error the held snapshot is unchanged and the
// error is returned so the caller can report it.
//
// Solid edits additionally synthesize the mesh and cross-check its measured
// metrics against the solved ones. A cross-check failure is a defect in this
// package, not a caller mistake: it is logged and the edit is rolled back, but
// no error surfaces.
func (c *Calculator) SetProperty(name string, value float64) error {
	if cur, ok := c.snap.Value(name); ok && approxEqual(cur, value) {
		return nil
	}
	next, err := Resolve(c.snap.Family(), name, value, c.snap)
	if err != nil {
		return err
	}
	if next.Family().IsSolid() {
		if _, err := Synthesize(next.Family(), next); err != nil {
			c.logger.Error("mesh cross-check failed, keeping previous state",
				"session", c.id,
				"family", next.Family().Name(),
				"property", name,
				"error", err)
			return nil
		}
	}
	c.snap = next
	return nil
}

// ResolveInputs replaces the session state from a batch of pinned values via
// the family decision tables. On error the held snapshot is unchanged.
func (c *Calculator) ResolveInputs(inputs map[string]float64) error {
	next, err := ResolveSet(c.snap.Family(), inputs)
	if err != nil {
		return err
	}
	c.snap = next
	return nil
}

// Mesh synthesizes the boundary mesh of the current solid state.
func (c *Calculator) Mesh() (*SolidMesh, error) {
	return Synthesize(c.snap.Family(), c.snap)
}
