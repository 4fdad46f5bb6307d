// Package render provides canonical text rendering for parsed formulas:
// it emits the Unicode subscript/superscript spelling of an
// already-parsed Formula.
// coding=utf-8
// @Project : go-chem
// @File    : render.go
package render

import (
	"strconv"
	"strings"

	"github.com/cx-luo/chemformula/formula"
	"github.com/cx-luo/chemformula/molecule"
)

// Style selects which top-level atom ordering render uses.
type Style int

const (
	// ParseOrder renders each mixture part's atoms in first-appearance
	// order, exactly as they were flattened from the parsed tree.
	ParseOrder Style = iota
	// Hill renders each mixture part's atoms in Hill order: Carbon
	// first, Hydrogen second, the rest ascending alphabetical.
	Hill
)

var subscriptDigit = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
var superscriptDigit = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func toSubscript(n uint64) string {
	s := strconv.FormatUint(n, 10)
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(subscriptDigit[c-'0'])
	}
	return b.String()
}

func toSuperscript(n uint64) string {
	s := strconv.FormatUint(n, 10)
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(superscriptDigit[c-'0'])
	}
	return b.String()
}

// partAtom is one (Atom, count) pair as seen at the top level of a single
// mixture part, in first-appearance order.
type partAtom struct {
	atom  formula.Atom
	count uint64
}

// flattenPart walks a single mixture part's group tree into an ordered,
// summed atom list. The part's coefficient is not folded into the counts,
// since renderPart writes it once as a prefix. It is deliberately independent of the analyser's
// whole-formula Multiset: the renderer only ever needs one part at a
// time, and keeping the two separate avoids coupling render order to
// analyse order.
func flattenPart(part *formula.MixturePart) []partAtom {
	order := make([]formula.Atom, 0, 8)
	counts := make(map[formula.Atom]uint64, 8)
	var walk func(g *formula.Group, mult uint64)
	walk = func(g *formula.Group, mult uint64) {
		for _, u := range g.Units {
			n := mult * uint64(u.Count)
			if u.Atom != nil {
				if _, ok := counts[*u.Atom]; !ok {
					order = append(order, *u.Atom)
				}
				counts[*u.Atom] += n
			} else if u.Group != nil {
				walk(u.Group, n)
			}
		}
	}
	walk(&part.Group, 1)
	out := make([]partAtom, len(order))
	for i, a := range order {
		out[i] = partAtom{atom: a, count: counts[a]}
	}
	return out
}

func hillLess(a, b formula.Atom) bool {
	ra, rb := molecule.HillRank(a.Elem), molecule.HillRank(b.Elem)
	if ra != rb {
		return ra < rb
	}
	return a.MassNumber < b.MassNumber
}

func sortHill(atoms []partAtom) {
	for i := 1; i < len(atoms); i++ {
		for j := i; j > 0 && hillLess(atoms[j].atom, atoms[j-1].atom); j-- {
			atoms[j], atoms[j-1] = atoms[j-1], atoms[j]
		}
	}
}

func renderAtom(a formula.Atom, count uint64) string {
	var b strings.Builder
	if a.IsLabelled() {
		b.WriteString(toSuperscript(uint64(a.MassNumber)))
	}
	b.WriteString(molecule.ElementSymbol(a.Elem))
	if count >= 2 {
		b.WriteString(toSubscript(count))
	}
	return b.String()
}

func renderPart(part *formula.MixturePart, style Style) string {
	atoms := flattenPart(part)
	if style == Hill {
		sortHill(atoms)
	}
	var b strings.Builder
	if part.Coefficient > 1 {
		b.WriteString(strconv.FormatUint(uint64(part.Coefficient), 10))
	}
	for _, pa := range atoms {
		if pa.count == 0 {
			continue
		}
		b.WriteString(renderAtom(pa.atom, pa.count))
	}
	return b.String()
}

func renderCharge(f *formula.Formula) string {
	if !f.HasCharge() {
		return ""
	}
	q := f.ChargeOrZero()
	sign := '+'
	mag := uint64(q)
	if q < 0 {
		sign = '-'
		mag = uint64(-q)
	}
	var b strings.Builder
	if mag != 1 {
		b.WriteString(toSuperscript(mag))
	}
	if sign == '+' {
		b.WriteRune('⁺')
	} else {
		b.WriteRune('⁻')
	}
	return b.String()
}

// Render renders a parsed Formula in the requested style. It never
// fails: every Formula produced by formula.Parse is, by construction,
// renderable.
func Render(f *formula.Formula, style Style) string {
	parts := make([]string, len(f.Parts))
	for i := range f.Parts {
		parts[i] = renderPart(&f.Parts[i], style)
	}
	return strings.Join(parts, ".") + renderCharge(f)
}
