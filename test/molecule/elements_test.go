// Package molecule_test provides tests for the periodic-table port.
// coding=utf-8
// @Project : go-chem
// @File    : elements_test.go
package molecule_test

import (
	"math"
	"testing"

	"github.com/cx-luo/chemformula/molecule"
)

func TestSymbolToElement(t *testing.T) {
	cases := map[string]molecule.Element{
		"H":  molecule.ELEM_H,
		"He": molecule.ELEM_He,
		"Cl": molecule.ELEM_Cl,
		"Fe": molecule.ELEM_Fe,
		"Og": molecule.ELEM_Og,
	}
	for sym, want := range cases {
		got, ok := molecule.SymbolToElement(sym)
		if !ok {
			t.Errorf("SymbolToElement(%q): not found", sym)
			continue
		}
		if got != want {
			t.Errorf("SymbolToElement(%q) = %v, want %v", sym, got, want)
		}
	}
}

func TestSymbolToElement_Unknown(t *testing.T) {
	if _, ok := molecule.SymbolToElement("Zz"); ok {
		t.Fatal("expected unknown symbol to report not found")
	}
}

func TestElementSymbol_RoundTrip(t *testing.T) {
	for sym, elem := range map[string]molecule.Element{"H": molecule.ELEM_H, "Na": molecule.ELEM_Na, "U": molecule.ELEM_U} {
		if got := molecule.ElementSymbol(elem); got != sym {
			t.Errorf("ElementSymbol(%v) = %q, want %q", elem, got, sym)
		}
	}
}

func TestElementSymbol_Residual(t *testing.T) {
	if got := molecule.ElementSymbol(molecule.ElementResidual); got != "R" {
		t.Fatalf("ElementSymbol(ElementResidual) = %q, want R", got)
	}
}

func TestStandardAtomicWeight(t *testing.T) {
	if w := molecule.StandardAtomicWeight(molecule.ELEM_O); math.Abs(w-15.999) > 1e-9 {
		t.Errorf("StandardAtomicWeight(O) = %v, want ~15.999", w)
	}
	if w := molecule.StandardAtomicWeight(molecule.ELEM_H); math.Abs(w-1.008) > 1e-9 {
		t.Errorf("StandardAtomicWeight(H) = %v, want ~1.008", w)
	}
}

func TestMostAbundantMassNumber(t *testing.T) {
	cases := map[molecule.Element]uint16{
		molecule.ELEM_C:  12,
		molecule.ELEM_H:  1,
		molecule.ELEM_O:  16,
		molecule.ELEM_Cl: 35,
	}
	for elem, want := range cases {
		if got := molecule.MostAbundantMassNumber(elem); got != want {
			t.Errorf("MostAbundantMassNumber(%v) = %d, want %d", elem, got, want)
		}
	}
}

func TestIsNobleGas(t *testing.T) {
	for _, e := range []molecule.Element{molecule.ELEM_He, molecule.ELEM_Ne, molecule.ELEM_Ar, molecule.ELEM_Kr, molecule.ELEM_Xe, molecule.ELEM_Rn} {
		if !molecule.IsNobleGas(e) {
			t.Errorf("IsNobleGas(%v) = false, want true", e)
		}
	}
	for _, e := range []molecule.Element{molecule.ELEM_H, molecule.ELEM_C, molecule.ELEM_Fe} {
		if molecule.IsNobleGas(e) {
			t.Errorf("IsNobleGas(%v) = true, want false", e)
		}
	}
}

func TestHillRank_CarbonAndHydrogenFirst(t *testing.T) {
	if molecule.HillRank(molecule.ELEM_C) != 0 {
		t.Fatal("HillRank(C) must be 0")
	}
	if molecule.HillRank(molecule.ELEM_H) != 1 {
		t.Fatal("HillRank(H) must be 1")
	}
	if molecule.HillRank(molecule.ELEM_O) <= molecule.HillRank(molecule.ELEM_H) {
		t.Fatal("HillRank(O) must come after HillRank(H)")
	}
}

func TestHillRank_AlphabeticalAmongRest(t *testing.T) {
	// Cl < Na < O alphabetically, so ranks must follow that order.
	rCl := molecule.HillRank(molecule.ELEM_Cl)
	rNa := molecule.HillRank(molecule.ELEM_Na)
	rO := molecule.HillRank(molecule.ELEM_O)
	if !(rCl < rNa && rNa < rO) {
		t.Fatalf("expected Cl < Na < O in Hill rank, got Cl=%d Na=%d O=%d", rCl, rNa, rO)
	}
}

func TestElectronMass(t *testing.T) {
	if math.Abs(molecule.ElectronMass()-0.00054857990888) > 1e-12 {
		t.Fatalf("ElectronMass() = %v, unexpected value", molecule.ElectronMass())
	}
}

func TestIsotopeMass_Curated(t *testing.T) {
	m, ok := molecule.IsotopeMass(molecule.ELEM_C, 13)
	if !ok {
		t.Fatal("expected curated mass for carbon-13")
	}
	if math.Abs(m-13.00335483507) > 1e-9 {
		t.Errorf("IsotopeMass(C,13) = %v, want ~13.00335483507", m)
	}
}

func TestIsotopeMass_Approximated(t *testing.T) {
	m, ok := molecule.IsotopeMass(molecule.ELEM_Xe, 129)
	if ok {
		t.Fatal("expected uncurated isotope to report ok=false")
	}
	if m != 129 {
		t.Errorf("IsotopeMass fallback = %v, want 129 (mass-number approximation)", m)
	}
}
