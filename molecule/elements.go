// Package molecule coding=utf-8
// @Project : go-chem
// @Time    : 2025/10/13 15:21
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : elements.go
// @Software: GoLand
package molecule

import "fmt"

// Element is an opaque identifier for a periodic-table entry. Its zero value
// is never a valid element; ElementResidual is the dedicated wildcard atom
// used by the residual-enabled formula flavour.
type Element int

// ElementResidual is the wildcard "R" atom accepted only by the
// residual-enabled AST flavour.
const ElementResidual Element = -1

// ElementInfo stores the periodic data this module folds formulas against.
type ElementInfo struct {
	Name            string
	StandardWeight  float64 // standard atomic weight, Daltons
	MostAbundantA   uint16  // mass number of the most abundant natural isotope
	IsNobleGas      bool
	HillAlphaRank   int // precomputed rank among non-C/H elements, ascending by symbol
}

// Element constants, valued by standard atomic number.
const (
	ELEM_H  Element = 1
	ELEM_He Element = 2
	ELEM_Li Element = 3
	ELEM_Be Element = 4
	ELEM_B  Element = 5
	ELEM_C  Element = 6
	ELEM_N  Element = 7
	ELEM_O  Element = 8
	ELEM_F  Element = 9
	ELEM_Ne Element = 10
	ELEM_Na Element = 11
	ELEM_Mg Element = 12
	ELEM_Al Element = 13
	ELEM_Si Element = 14
	ELEM_P  Element = 15
	ELEM_S  Element = 16
	ELEM_Cl Element = 17
	ELEM_Ar Element = 18
	ELEM_K  Element = 19
	ELEM_Ca Element = 20
	ELEM_Sc Element = 21
	ELEM_Ti Element = 22
	ELEM_V  Element = 23
	ELEM_Cr Element = 24
	ELEM_Mn Element = 25
	ELEM_Fe Element = 26
	ELEM_Co Element = 27
	ELEM_Ni Element = 28
	ELEM_Cu Element = 29
	ELEM_Zn Element = 30
	ELEM_Ga Element = 31
	ELEM_Ge Element = 32
	ELEM_As Element = 33
	ELEM_Se Element = 34
	ELEM_Br Element = 35
	ELEM_Kr Element = 36
	ELEM_Rb Element = 37
	ELEM_Sr Element = 38
	ELEM_Y  Element = 39
	ELEM_Zr Element = 40
	ELEM_Nb Element = 41
	ELEM_Mo Element = 42
	ELEM_Tc Element = 43
	ELEM_Ru Element = 44
	ELEM_Rh Element = 45
	ELEM_Pd Element = 46
	ELEM_Ag Element = 47
	ELEM_Cd Element = 48
	ELEM_In Element = 49
	ELEM_Sn Element = 50
	ELEM_Sb Element = 51
	ELEM_Te Element = 52
	ELEM_I  Element = 53
	ELEM_Xe Element = 54
	ELEM_Cs Element = 55
	ELEM_Ba Element = 56
	ELEM_La Element = 57
	ELEM_Ce Element = 58
	ELEM_Pr Element = 59
	ELEM_Nd Element = 60
	ELEM_Pm Element = 61
	ELEM_Sm Element = 62
	ELEM_Eu Element = 63
	ELEM_Gd Element = 64
	ELEM_Tb Element = 65
	ELEM_Dy Element = 66
	ELEM_Ho Element = 67
	ELEM_Er Element = 68
	ELEM_Tm Element = 69
	ELEM_Yb Element = 70
	ELEM_Lu Element = 71
	ELEM_Hf Element = 72
	ELEM_Ta Element = 73
	ELEM_W  Element = 74
	ELEM_Re Element = 75
	ELEM_Os Element = 76
	ELEM_Ir Element = 77
	ELEM_Pt Element = 78
	ELEM_Au Element = 79
	ELEM_Hg Element = 80
	ELEM_Tl Element = 81
	ELEM_Pb Element = 82
	ELEM_Bi Element = 83
	ELEM_Po Element = 84
	ELEM_At Element = 85
	ELEM_Rn Element = 86
	ELEM_Fr Element = 87
	ELEM_Ra Element = 88
	ELEM_Ac Element = 89
	ELEM_Th Element = 90
	ELEM_Pa Element = 91
	ELEM_U  Element = 92
	ELEM_Np Element = 93
	ELEM_Pu Element = 94
	ELEM_Am Element = 95
	ELEM_Cm Element = 96
	ELEM_Bk Element = 97
	ELEM_Cf Element = 98
	ELEM_Es Element = 99
	ELEM_Fm Element = 100
	ELEM_Md Element = 101
	ELEM_No Element = 102
	ELEM_Lr Element = 103
	ELEM_Rf Element = 104
	ELEM_Db Element = 105
	ELEM_Sg Element = 106
	ELEM_Bh Element = 107
	ELEM_Hs Element = 108
	ELEM_Mt Element = 109
	ELEM_Ds Element = 110
	ELEM_Rg Element = 111
	ELEM_Cn Element = 112
	ELEM_Nh Element = 113
	ELEM_Fl Element = 114
	ELEM_Mc Element = 115
	ELEM_Lv Element = 116
	ELEM_Ts Element = 117
	ELEM_Og Element = 118
)

// electronMass is the CODATA electron rest mass in unified atomic mass units.
const electronMass = 0.00054857990888

// ElectronMass returns the electron rest mass in Daltons.
func ElectronMass() float64 { return electronMass }

var (
	// elementData indexed by atomic number; index 0 unused. Standard atomic
	// weights follow IUPAC conventional values; mass numbers name each
	// element's most abundant natural isotope.
	elementData = []ElementInfo{
		{},
		{"H", 1.008, 1, false, 0},
		{"He", 4.002602, 4, true, 0},
		{"Li", 6.94, 7, false, 0},
		{"Be", 9.0121831, 9, false, 0},
		{"B", 10.81, 11, false, 0},
		{"C", 12.011, 12, false, 0},
		{"N", 14.007, 14, false, 0},
		{"O", 15.999, 16, false, 0},
		{"F", 18.998403163, 19, false, 0},
		{"Ne", 20.1797, 20, true, 0}, // 10
		{"Na", 22.98976928, 23, false, 0},
		{"Mg", 24.305, 24, false, 0},
		{"Al", 26.9815384, 27, false, 0},
		{"Si", 28.085, 28, false, 0},
		{"P", 30.973761998, 31, false, 0},
		{"S", 32.06, 32, false, 0},
		{"Cl", 35.45, 35, false, 0},
		{"Ar", 39.95, 40, true, 0},
		{"K", 39.0983, 39, false, 0},
		{"Ca", 40.078, 40, false, 0}, // 20
		{"Sc", 44.955908, 45, false, 0},
		{"Ti", 47.867, 48, false, 0},
		{"V", 50.9415, 51, false, 0},
		{"Cr", 51.9961, 52, false, 0},
		{"Mn", 54.938043, 55, false, 0},
		{"Fe", 55.845, 56, false, 0},
		{"Co", 58.933194, 59, false, 0},
		{"Ni", 58.6934, 58, false, 0},
		{"Cu", 63.546, 63, false, 0},
		{"Zn", 65.38, 64, false, 0}, // 30
		{"Ga", 69.723, 69, false, 0},
		{"Ge", 72.630, 74, false, 0},
		{"As", 74.921595, 75, false, 0},
		{"Se", 78.971, 80, false, 0},
		{"Br", 79.904, 79, false, 0},
		{"Kr", 83.798, 84, true, 0},
		{"Rb", 85.4678, 85, false, 0},
		{"Sr", 87.62, 88, false, 0},
		{"Y", 88.90584, 89, false, 0},
		{"Zr", 91.224, 90, false, 0}, // 40
		{"Nb", 92.90637, 93, false, 0},
		{"Mo", 95.95, 98, false, 0},
		{"Tc", 97.0, 98, false, 0},
		{"Ru", 101.07, 102, false, 0},
		{"Rh", 102.90549, 103, false, 0},
		{"Pd", 106.42, 106, false, 0},
		{"Ag", 107.8682, 107, false, 0},
		{"Cd", 112.414, 114, false, 0},
		{"In", 114.818, 115, false, 0},
		{"Sn", 118.710, 120, false, 0}, // 50
		{"Sb", 121.760, 121, false, 0},
		{"Te", 127.60, 130, false, 0},
		{"I", 126.90447, 127, false, 0},
		{"Xe", 131.293, 132, true, 0},
		{"Cs", 132.90545196, 133, false, 0},
		{"Ba", 137.327, 138, false, 0},
		{"La", 138.90547, 139, false, 0},
		{"Ce", 140.116, 140, false, 0},
		{"Pr", 140.90766, 141, false, 0},
		{"Nd", 144.242, 142, false, 0}, // 60
		{"Pm", 145.0, 145, false, 0},
		{"Sm", 150.36, 152, false, 0},
		{"Eu", 151.964, 153, false, 0},
		{"Gd", 157.25, 158, false, 0},
		{"Tb", 158.925354, 159, false, 0},
		{"Dy", 162.500, 164, false, 0},
		{"Ho", 164.930329, 165, false, 0},
		{"Er", 167.259, 166, false, 0},
		{"Tm", 168.934219, 169, false, 0},
		{"Yb", 173.045, 174, false, 0}, // 70
		{"Lu", 174.9668, 175, false, 0},
		{"Hf", 178.49, 180, false, 0},
		{"Ta", 180.94788, 181, false, 0},
		{"W", 183.84, 184, false, 0},
		{"Re", 186.207, 187, false, 0},
		{"Os", 190.23, 192, false, 0},
		{"Ir", 192.217, 193, false, 0},
		{"Pt", 195.084, 195, false, 0},
		{"Au", 196.966570, 197, false, 0},
		{"Hg", 200.592, 202, false, 0}, // 80
		{"Tl", 204.38, 205, false, 0},
		{"Pb", 207.2, 208, false, 0},
		{"Bi", 208.98040, 209, false, 0},
		{"Po", 209.0, 209, false, 0},
		{"At", 210.0, 210, false, 0},
		{"Rn", 222.0, 222, true, 0},
		{"Fr", 223.0, 223, false, 0},
		{"Ra", 226.0, 226, false, 0},
		{"Ac", 227.0, 227, false, 0},
		{"Th", 232.0377, 232, false, 0}, // 90
		{"Pa", 231.03588, 231, false, 0},
		{"U", 238.02891, 238, false, 0},
		{"Np", 237.0, 237, false, 0},
		{"Pu", 244.0, 244, false, 0},
		{"Am", 243.0, 243, false, 0},
		{"Cm", 247.0, 247, false, 0},
		{"Bk", 247.0, 247, false, 0},
		{"Cf", 251.0, 251, false, 0},
		{"Es", 252.0, 252, false, 0},
		{"Fm", 257.0, 257, false, 0}, // 100
		{"Md", 258.0, 258, false, 0},
		{"No", 259.0, 259, false, 0},
		{"Lr", 262.0, 262, false, 0},
		{"Rf", 267.0, 267, false, 0},
		{"Db", 268.0, 268, false, 0},
		{"Sg", 271.0, 271, false, 0},
		{"Bh", 272.0, 272, false, 0},
		{"Hs", 270.0, 270, false, 0},
		{"Mt", 276.0, 276, false, 0},
		{"Ds", 281.0, 281, false, 0}, // 110
		{"Rg", 280.0, 280, false, 0},
		{"Cn", 285.0, 285, false, 0},
		{"Nh", 284.0, 284, false, 0},
		{"Fl", 289.0, 289, false, 0},
		{"Mc", 288.0, 288, false, 0},
		{"Lv", 293.0, 293, false, 0},
		{"Ts", 294.0, 294, false, 0},
		{"Og", 294.0, 294, false, 0}, // 118
	}

	// symbolToNumber maps a canonical element symbol to its atomic number
	// for tokenizer lookups.
	symbolToNumber = func() map[string]Element {
		m := make(map[string]Element, len(elementData))
		for i := 1; i < len(elementData); i++ {
			m[elementData[i].Name] = Element(i)
		}
		return m
	}()
)

func init() {
	// Precompute Hill-order rank among elements other than C and H:
	// ascending alphabetical by symbol.
	type pair struct {
		elem Element
		name string
	}
	var rest []pair
	for i := 1; i < len(elementData); i++ {
		e := Element(i)
		if e == ELEM_C || e == ELEM_H {
			continue
		}
		rest = append(rest, pair{e, elementData[i].Name})
	}
	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			if rest[j].name < rest[i].name {
				rest[i], rest[j] = rest[j], rest[i]
			}
		}
	}
	for rank, p := range rest {
		elementData[p.elem].HillAlphaRank = rank + 2 // 0 and 1 reserved for C, H
	}
}

// SymbolToElement returns the element identified by a canonical (ASCII)
// symbol, e.g. "Cl" -> chlorine. Ok is false for unknown symbols.
func SymbolToElement(symbol string) (Element, bool) {
	e, ok := symbolToNumber[symbol]
	return e, ok
}

// ElementSymbol returns the canonical textual symbol for an element.
func ElementSymbol(e Element) string {
	if e == ElementResidual {
		return "R"
	}
	if int(e) > 0 && int(e) < len(elementData) {
		return elementData[e].Name
	}
	return fmt.Sprintf("Elem%d", e)
}

// StandardAtomicWeight returns the IUPAC conventional atomic weight used for
// molar_mass accumulation.
func StandardAtomicWeight(e Element) float64 {
	if int(e) > 0 && int(e) < len(elementData) {
		return elementData[e].StandardWeight
	}
	return 0
}

// MostAbundantMassNumber returns the mass number of the element's most
// abundant natural isotope, used both for monoisotopic_mass and to decide
// whether an explicit isotope label is redundant.
func MostAbundantMassNumber(e Element) uint16 {
	if int(e) > 0 && int(e) < len(elementData) {
		return elementData[e].MostAbundantA
	}
	return 0
}

// IsNobleGas reports whether e is one of the noble gases (He, Ne, Ar, Kr,
// Xe, Rn).
func IsNobleGas(e Element) bool {
	if int(e) > 0 && int(e) < len(elementData) {
		return elementData[e].IsNobleGas
	}
	return false
}

// HillRank returns the ordering key used by the Hill-order renderer and
// analyser: Carbon=0, Hydrogen=1, all other elements ranked ascending
// alphabetical by symbol.
func HillRank(e Element) int {
	switch e {
	case ELEM_C:
		return 0
	case ELEM_H:
		return 1
	}
	if int(e) > 0 && int(e) < len(elementData) {
		return elementData[e].HillAlphaRank
	}
	return len(elementData) + int(e)
}
