// Package formula implements the permissive, Unicode-aware molecular
// formula grammar: normalisation of OCR/typographic noise, tokenizing,
// recursive-descent parsing into an immutable tree, and the analyser that
// folds a parsed Formula into element counts, masses, and m/z. Parse is
// the sole entry point; everything downstream operates on the Formula it
// returns.
// coding=utf-8
// @Project : go-chem
// @File    : formula.go
package formula

// Parse parses text under the default options (16-bit counts, no
// residual atoms, parse-order formulas). Use ParseWithOptions to select a
// count width, enable the residual wildcard, or require Hill-ordered
// input.
func Parse(text string) (*Formula, error) {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions parses text under the given Options. Every byte
// sequence terminates with either a *Formula or a *ParseError; Parse
// never panics.
func ParseWithOptions(text string, opts Options) (*Formula, error) {
	maxBytes := opts.MaxInputBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxInputBytes
	}
	if len(text) > maxBytes {
		return nil, errAt(InputTooLong, maxBytes, "input exceeds the configured maximum length")
	}

	chars, err := normalize(text)
	if err != nil {
		return nil, err
	}

	toks, err := tokenize(chars)
	if err != nil {
		return nil, err
	}
	body := toks[:len(toks)-1] // drop the sentinel EOF token

	rest, charge, err := stripCharge(body)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: rest, opts: opts}
	parts, err := p.parseFormulaBody()
	if err != nil {
		return nil, err
	}

	flat, err := flatten(parts, opts.Width)
	if err != nil {
		return nil, err
	}

	f := &Formula{Parts: parts, Charge: charge, opts: opts, rawText: text, flat: flat}
	if opts.RequireHillOrder && !IsHillSorted(f) {
		return nil, errAt(NotHillOrdered, 0, "formula is not Hill-ordered")
	}
	return f, nil
}
