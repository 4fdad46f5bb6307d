// Package molecule coding=utf-8
// @Project : go-chem
// @File    : isotopes.go
package molecule

// isotopeMasses holds curated exact isotope masses (Daltons) for the
// isotopes that occur routinely in formulas drawn from PubChem/InChI
// records. It is intentionally not exhaustive: nuclide masses for every
// known isotope of all 118 elements would dwarf the rest of this package
// for no benefit to formula parsing, so only the isotopes a working
// cheminformatics pipeline actually labels are curated here. Anything
// missing falls back to the mass-number approximation in IsotopeMass.
var isotopeMasses = map[Element]map[uint16]float64{
	ELEM_H: {1: 1.00782503207, 2: 2.01410177785, 3: 3.0160492777},
	ELEM_C: {12: 12.0, 13: 13.00335483507, 14: 14.0032419884},
	ELEM_N: {14: 14.0030740048, 15: 15.0001088982},
	ELEM_O: {16: 15.99491461956, 17: 16.99913170, 18: 17.9991610},
	ELEM_S: {32: 31.97207100, 33: 32.97145876, 34: 33.96786690, 36: 35.96708076},
	ELEM_Cl: {35: 34.96885268, 37: 36.96590259},
	ELEM_Br: {79: 78.9183371, 81: 80.9162906},
	ELEM_P:  {31: 30.97376199},
	ELEM_F:  {19: 18.99840316},
	ELEM_I:  {127: 126.9044719},
	ELEM_Na: {23: 22.9897692809},
	ELEM_K:  {39: 38.9637069},
}

// IsotopeMass returns the exact mass (Daltons) of the named isotope of e,
// when known, or the mass-number approximation otherwise. ok is true only
// for curated exact values; implementations that need to distinguish
// "approximated" from "measured" should branch on ok.
func IsotopeMass(e Element, massNumber uint16) (mass float64, ok bool) {
	if table, found := isotopeMasses[e]; found {
		if m, found2 := table[massNumber]; found2 {
			return m, true
		}
	}
	return float64(massNumber), false
}
