// Package formula coding=utf-8
// @Project : go-chem
// @File    : parser.go
package formula

import "github.com/cx-luo/chemformula/molecule"

const maxNestingDepth = 256

// parser is a recursive-descent parser over a charge-stripped token
// stream. It holds no state beyond its position and explicit
// bracket-nesting depth, so a *parser is used once per Parse call.
type parser struct {
	toks  []Token
	pos   int
	opts  Options
	depth int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		end := 0
		if n := len(p.toks); n > 0 {
			end = p.toks[n-1].Span.End
		}
		return Token{Kind: TokEOF, Span: Span{end, end}}
	}
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].Span.End
}

// startsAtomOrGroup reports whether toks[idx] can begin an Atom or Group,
// used to disambiguate a leading DigitsPlain as a mixture coefficient
// from an orphan count.
func startsAtomOrGroup(toks []Token, idx int) bool {
	if idx >= len(toks) {
		return false
	}
	switch toks[idx].Kind {
	case TokElement, TokIsotopeAtom, TokDigitsSuperscript, TokLParen, TokLBracket, TokResidual:
		return true
	}
	return false
}

// parseFormulaBody parses MixPart ("." MixPart)* over the (already
// charge-stripped) token stream.
func (p *parser) parseFormulaBody() ([]MixturePart, error) {
	var parts []MixturePart
	afterDot := false
	for {
		part, err := p.parseMixPart(afterDot)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if p.peek().Kind == TokDot {
			p.next()
			afterDot = true
			continue
		}
		break
	}
	if p.peek().Kind != TokEOF {
		return nil, errAt(UnexpectedEnd, p.peek().Span.Start, "unexpected trailing content")
	}
	return parts, nil
}

func (p *parser) parseMixPart(afterDot bool) (MixturePart, error) {
	start := p.peek().Span.Start
	coeff := uint32(1)
	if p.peek().Kind == TokDigitsPlain && startsAtomOrGroup(p.toks, p.pos+1) {
		tok := p.next()
		if tok.Value == 0 {
			return MixturePart{}, errSpan(InvalidCoefficient, tok.Span, "mixture coefficient cannot be zero")
		}
		if tok.Value > p.opts.Width.max() {
			return MixturePart{}, errSpan(CountOverflow, tok.Span, "coefficient exceeds configured width")
		}
		coeff = uint32(tok.Value)
	}
	group, err := p.parseGroup()
	if err != nil {
		return MixturePart{}, err
	}
	return MixturePart{Coefficient: coeff, Group: *group, Span: Span{start, p.prevEnd()}}, nil
}

// parseGroup parses Unit+ until a Dot, EOF, or unconsumed closing
// delimiter is reached; the caller is responsible for consuming any
// opening/closing bracket pair around the group.
func (p *parser) parseGroup() (*Group, error) {
	var units []Unit
	for {
		switch p.peek().Kind {
		case TokDot, TokEOF, TokRParen, TokRBracket:
			if len(units) == 0 {
				return nil, errAt(UnexpectedEnd, p.peek().Span.Start, "expected an atom or group")
			}
			return &Group{Units: units}, nil
		}
		unit, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
}

func (p *parser) makeIsotopeAtom(elem molecule.Element, massNumber uint16, span Span) (*Atom, error) {
	if massNumber == molecule.MostAbundantMassNumber(elem) {
		return nil, errSpan(RedundantIsotopeLabel, span, "isotope label matches the most abundant natural mass number")
	}
	return &Atom{Elem: elem, MassNumber: massNumber}, nil
}

func (p *parser) enterNesting(at int) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return errAt(NestingTooDeep, at, "")
	}
	return nil
}

func (p *parser) parseUnit() (Unit, error) {
	start := p.peek().Span.Start
	var atom *Atom
	var grp *Group

	switch p.peek().Kind {
	case TokElement:
		tok := p.next()
		atom = &Atom{Elem: tok.Elem}
	case TokResidual:
		tok := p.next()
		if !p.opts.AllowResidual {
			return Unit{}, errSpan(ResidualDisallowed, tok.Span, "residual atom not accepted by this formula flavour")
		}
		atom = &Atom{Elem: molecule.ElementResidual}
	case TokIsotopeAtom:
		tok := p.next()
		a, err := p.makeIsotopeAtom(tok.Elem, tok.MassNumber, tok.Span)
		if err != nil {
			return Unit{}, err
		}
		atom = a
	case TokDigitsSuperscript:
		supTok := p.next()
		if p.peek().Kind != TokElement {
			return Unit{}, errSpan(MisplacedIsotope, supTok.Span, "superscript mass number must be immediately followed by an element symbol")
		}
		elemTok := p.next()
		span := Span{supTok.Span.Start, elemTok.Span.End}
		if supTok.Value == 0 || supTok.Value > 999 {
			return Unit{}, errSpan(MalformedIsotopeBracket, span, "mass number must be in 1..999")
		}
		a, err := p.makeIsotopeAtom(elemTok.Elem, uint16(supTok.Value), span)
		if err != nil {
			return Unit{}, err
		}
		atom = a
	case TokLParen:
		p.next()
		if err := p.enterNesting(start); err != nil {
			return Unit{}, err
		}
		g, err := p.parseGroup()
		p.depth--
		if err != nil {
			return Unit{}, err
		}
		if p.peek().Kind != TokRParen {
			return Unit{}, errAt(UnbalancedDelimiter, p.peek().Span.Start, "expected closing )")
		}
		p.next()
		grp = g
	case TokLBracket:
		p.next()
		if err := p.enterNesting(start); err != nil {
			return Unit{}, err
		}
		g, err := p.parseGroup()
		p.depth--
		if err != nil {
			return Unit{}, err
		}
		if p.peek().Kind != TokRBracket {
			return Unit{}, errAt(UnbalancedDelimiter, p.peek().Span.Start, "expected closing ]")
		}
		p.next()
		grp = g
	case TokDigitsPlain, TokDigitsSubscript:
		return Unit{}, errAt(OrphanCount, p.peek().Span.Start, "count has no preceding atom or group")
	case TokRParen, TokRBracket:
		return Unit{}, errAt(UnbalancedDelimiter, p.peek().Span.Start, "unmatched closing delimiter")
	default:
		return Unit{}, errAt(UnexpectedEnd, p.peek().Span.Start, "expected an atom or group")
	}

	count := uint32(1)
	if k := p.peek().Kind; k == TokDigitsPlain || k == TokDigitsSubscript {
		tok := p.next()
		if tok.Value > p.opts.Width.max() {
			return Unit{}, errSpan(CountOverflow, tok.Span, "count exceeds configured width")
		}
		count = uint32(tok.Value)
	}
	return Unit{Atom: atom, Group: grp, Count: count, Span: Span{start, p.prevEnd()}}, nil
}
