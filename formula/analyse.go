// Package formula coding=utf-8
// @Project : go-chem
// @File    : analyse.go
package formula

import "github.com/cx-luo/chemformula/molecule"

// checkedMul multiplies a and b, reporting overflow rather than wrapping.
func checkedMul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	return p, p/a != b
}

// flatten folds the parsed tree into an element→count Multiset,
// multiplying counts through nested groups and summing across mixture
// parts. Any multiplication or running total that would exceed the
// configured count width is reported as CountOverflow rather than
// wrapping silently.
func flatten(parts []MixturePart, width CountWidth) (*Multiset, error) {
	ms := newMultiset()
	max := width.max()

	var walk func(g *Group, mult uint64) error
	walk = func(g *Group, mult uint64) error {
		for _, u := range g.Units {
			n, overflow := checkedMul(mult, uint64(u.Count))
			if overflow || n > max {
				return errSpan(CountOverflow, u.Span, "multiplication exceeds configured count width")
			}
			switch {
			case u.Atom != nil:
				cur := ms.Count(*u.Atom)
				total := cur + n
				if total < cur || total > max {
					return errSpan(CountOverflow, u.Span, "accumulated count exceeds configured count width")
				}
				ms.add(*u.Atom, n)
			case u.Group != nil:
				if err := walk(u.Group, n); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for i := range parts {
		if err := walk(&parts[i].Group, uint64(parts[i].Coefficient)); err != nil {
			return nil, err
		}
	}
	return ms, nil
}

// Elements returns the flattened element→count multiset, in
// first-appearance order.
func (f *Formula) Elements() *Multiset { return f.flat }

// Charge returns the stated charge, or 0 if absent. Use HasCharge to
// distinguish the two cases.
func Charge(f *Formula) int32 { return f.ChargeOrZero() }

// massFor returns the mass contribution for one occurrence of a: the
// labelled isotope's own mass when a carries an explicit label, the
// element's standard atomic weight for molar mass, or its most abundant
// isotope's mass for monoisotopic mass.
func massFor(a Atom, monoisotopic bool) float64 {
	if a.IsLabelled() {
		m, _ := molecule.IsotopeMass(a.Elem, a.MassNumber)
		return m
	}
	if monoisotopic {
		m, _ := molecule.IsotopeMass(a.Elem, molecule.MostAbundantMassNumber(a.Elem))
		return m
	}
	return molecule.StandardAtomicWeight(a.Elem)
}

// hillOrdered returns the multiset's atoms sorted by Hill order, used to
// make the floating-point accumulation order deterministic across
// platforms.
func hillOrdered(ms *Multiset) []Atom {
	atoms := ms.Atoms()
	for i := 1; i < len(atoms); i++ {
		for j := i; j > 0; j-- {
			ra, rb := molecule.HillRank(atoms[j].Elem), molecule.HillRank(atoms[j-1].Elem)
			less := ra < rb || (ra == rb && atoms[j].MassNumber < atoms[j-1].MassNumber)
			if !less {
				break
			}
			atoms[j], atoms[j-1] = atoms[j-1], atoms[j]
		}
	}
	return atoms
}

// MolarMass sums count(a)·standard_atomic_weight(a) over every distinct
// atom, substituting the labelled isotope's own mass for isotope-tagged
// atoms, accumulated in Hill order.
func MolarMass(f *Formula) float64 {
	var sum float64
	for _, a := range hillOrdered(f.flat) {
		sum += float64(f.flat.Count(a)) * massFor(a, false)
	}
	return sum
}

// MonoisotopicMass sums count(a)·most_abundant_isotope_mass(a) over every
// distinct atom, substituting the labelled isotope's own mass for
// isotope-tagged atoms, accumulated in Hill order.
func MonoisotopicMass(f *Formula) float64 {
	var sum float64
	for _, a := range hillOrdered(f.flat) {
		sum += float64(f.flat.Count(a)) * massFor(a, true)
	}
	return sum
}

// MassOverCharge computes (mass ± |q|·mₑ)/|q|: +mₑ for anions (negative
// charge), −mₑ for cations (positive charge). It returns NoCharge when
// charge is absent or stated as zero, since m/z is undefined there.
func MassOverCharge(f *Formula) (float64, error) {
	if !f.HasCharge() || f.ChargeOrZero() == 0 {
		return 0, errAt(NoCharge, 0, "mass-over-charge is undefined without a nonzero stated charge")
	}
	q := f.ChargeOrZero()
	mass := MonoisotopicMass(f)
	me := molecule.ElectronMass()
	var absQ float64
	if q < 0 {
		absQ = float64(-q)
		mass += absQ * me
	} else {
		absQ = float64(q)
		mass -= absQ * me
	}
	return mass / absQ, nil
}

// flattenPartAtoms returns every atom of one mixture part, including those
// inside nested groups, in the order they occur, with no deduplication: a
// repeated atom must still show up
// twice here, since IsHillSorted needs to see the repeat to reject it.
func flattenPartAtoms(part *MixturePart) []Atom {
	order := make([]Atom, 0, len(part.Group.Units))
	var walk func(g *Group)
	walk = func(g *Group) {
		for _, u := range g.Units {
			if u.Atom != nil {
				order = append(order, *u.Atom)
			} else if u.Group != nil {
				walk(u.Group)
			}
		}
	}
	walk(&part.Group)
	return order
}

// IsHillSorted reports whether every top-level mixture part, compared by
// Atom under Hill order, is non-decreasing with no element repeated at
// the top level.
func IsHillSorted(f *Formula) bool {
	for i := range f.Parts {
		atoms := flattenPartAtoms(&f.Parts[i])
		for j := 1; j < len(atoms); j++ {
			ra, rb := molecule.HillRank(atoms[j-1].Elem), molecule.HillRank(atoms[j].Elem)
			if ra > rb || (ra == rb && atoms[j-1].MassNumber > atoms[j].MassNumber) {
				return false
			}
			if ra == rb && atoms[j-1].MassNumber == atoms[j].MassNumber {
				return false // same atom repeated at the top level
			}
		}
	}
	return true
}

// nobleGasPartners are the non-noble elements a noble-gas compound may
// contain, as in XeF2, XeOF4, and KrF2.
var nobleGasPartners = map[molecule.Element]bool{
	molecule.ELEM_F: true,
	molecule.ELEM_O: true,
}

// IsNobleGasCompound reports whether the flattened atom set contains at
// least one noble gas and no atom outside the noble-gas-compatible set.
func IsNobleGasCompound(f *Formula) bool {
	hasNoble := false
	for _, a := range f.flat.Atoms() {
		if molecule.IsNobleGas(a.Elem) {
			hasNoble = true
			continue
		}
		if !nobleGasPartners[a.Elem] {
			return false
		}
	}
	return hasNoble
}

// ContainsIsotope reports whether the flattened multiset contains the
// labelled isotope (elem, massNumber) with count ≥ 1.
func ContainsIsotope(f *Formula, elem molecule.Element, massNumber uint16) bool {
	return f.flat.Count(Atom{Elem: elem, MassNumber: massNumber}) >= 1
}
