// Package formula coding=utf-8
// @Project : go-chem
// @File    : ast.go
package formula

import "github.com/cx-luo/chemformula/molecule"

// Atom is either Bare(Element) or Labelled(Element, mass-number); the zero
// MassNumber means Bare. Equality is by identifier, so Atom is usable
// directly as a map key.
type Atom struct {
	Elem       molecule.Element
	MassNumber uint16 // 0 == bare, no isotope label
}

// IsLabelled reports whether the atom carries an explicit isotope label.
func (a Atom) IsLabelled() bool { return a.MassNumber != 0 }

// Unit is one (child, multiplier) pair inside a Group: the child is either
// an Atom or a nested Group, never both.
type Unit struct {
	Atom  *Atom
	Group *Group
	Count uint32 // multiplier; 1 when elided in source
	Span  Span
}

// Group is an ordered sequence of Units, the right-hand side of an
// atom/group repetition such as "(NH3)5" or a bare run like "SO4".
type Group struct {
	Units []Unit
}

// MixturePart is one dot-separated component of a composite Formula, with
// its own leading coefficient (default 1).
type MixturePart struct {
	Coefficient uint32
	Group       Group
	Span        Span
}

// Formula is the immutable parsed root: one or more mixture parts plus an
// optional trailing charge. Charge == nil means "no stated charge",
// distinct from a stated charge of zero.
type Formula struct {
	Parts   []MixturePart
	Charge  *int32
	opts    Options
	rawText string
	flat    *Multiset
}

// Options returns the construction-time options this Formula was parsed
// with (count width, residual flavour, Hill requirement).
func (f *Formula) Options() Options { return f.opts }

// Text returns the original, unparsed input the Formula was built from.
func (f *Formula) Text() string { return f.rawText }

// HasCharge reports whether a charge token was present in the source,
// distinguishing "absent" from an explicit zero.
func (f *Formula) HasCharge() bool { return f.Charge != nil }

// ChargeOrZero returns the stated charge, or 0 if none was stated.
func (f *Formula) ChargeOrZero() int32 {
	if f.Charge == nil {
		return 0
	}
	return *f.Charge
}

// Multiset is an element→count mapping with keys unique by Atom and a
// preserved first-appearance order for renderers/analysers that need
// parse order rather than Hill order.
type Multiset struct {
	counts map[Atom]uint64
	order  []Atom
}

func newMultiset() *Multiset {
	return &Multiset{counts: make(map[Atom]uint64)}
}

// add folds n additional occurrences of a into the multiset, recording
// first-appearance order.
func (m *Multiset) add(a Atom, n uint64) {
	if _, ok := m.counts[a]; !ok {
		m.order = append(m.order, a)
	}
	m.counts[a] += n
}

// Count returns the number of occurrences of a, 0 if absent.
func (m *Multiset) Count(a Atom) uint64 { return m.counts[a] }

// Atoms returns the distinct atoms in first-appearance order.
func (m *Multiset) Atoms() []Atom {
	out := make([]Atom, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of distinct atoms.
func (m *Multiset) Len() int { return len(m.counts) }
