// coding=utf-8
// @Project : go-chem
// @File    : render_test.go
package render_test

import (
	"testing"

	"github.com/cx-luo/chemformula/formula"
	"github.com/cx-luo/chemformula/render"
)

func mustParse(t *testing.T, text string) *formula.Formula {
	t.Helper()
	f, err := formula.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return f
}

func TestRender_HillStyleWater(t *testing.T) {
	f := mustParse(t, "H2O")
	got := render.Render(f, render.Hill)
	if got != "H₂O" {
		t.Fatalf("got %q, want H₂O", got)
	}
}

func TestRender_ParseOrderHydrate(t *testing.T) {
	f := mustParse(t, "CuSO4.5H2O")
	got := render.Render(f, render.ParseOrder)
	if got != "CuSO₄.5H₂O" {
		t.Fatalf("got %q, want CuSO₄.5H₂O", got)
	}
}

func TestRender_HillReordersNonHillInput(t *testing.T) {
	f := mustParse(t, "C2OH5")
	parseOrder := render.Render(f, render.ParseOrder)
	hill := render.Render(f, render.Hill)
	if parseOrder != "C₂OH₅" {
		t.Fatalf("parse-order got %q, want C₂OH₅", parseOrder)
	}
	if hill != "C₂H₅O" {
		t.Fatalf("hill got %q, want C₂H₅O", hill)
	}
}

func TestRender_IsotopeLabel(t *testing.T) {
	f := mustParse(t, "[13C]H4")
	got := render.Render(f, render.ParseOrder)
	if got != "¹³CH₄" {
		t.Fatalf("got %q, want ¹³CH₄", got)
	}
}

func TestRender_ChargeSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SO4-2", "SO₄²⁻"},
		{"Na+", "Na⁺"},
		{"Fe+3", "Fe³⁺"},
	}
	for _, c := range cases {
		f := mustParse(t, c.in)
		got := render.Render(f, render.ParseOrder)
		if got != c.want {
			t.Errorf("Render(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRender_CoordinationComplexHasNoMixtureSeparator(t *testing.T) {
	f := mustParse(t, "[Co(NH3)5Cl]Cl2")
	got := render.Render(f, render.ParseOrder)
	if got == "" {
		t.Fatal("expected non-empty render")
	}
	for _, r := range got {
		if r == '.' {
			t.Fatalf("unexpected mixture separator in %q", got)
		}
	}
}

func TestRender_SingleAtomCountElided(t *testing.T) {
	f := mustParse(t, "NaCl")
	got := render.Render(f, render.ParseOrder)
	if got != "NaCl" {
		t.Fatalf("got %q, want NaCl (counts of 1 elided)", got)
	}
}
