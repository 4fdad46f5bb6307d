// Package formula coding=utf-8
// @Project : go-chem
// @File    : lexer.go
package formula

import "github.com/cx-luo/chemformula/molecule"

// tokenize is total and linear: every normalised input either yields a
// token stream or a single ParseError identifying the first offending
// span.
func tokenize(chars []normChar) ([]Token, error) {
	var toks []Token
	n := len(chars)
	i := 0
	for i < n {
		c := chars[i]
		switch {
		case c.ch == '.':
			toks = append(toks, Token{Kind: TokDot, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == '+':
			toks = append(toks, Token{Kind: TokPlus, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == '-':
			toks = append(toks, Token{Kind: TokMinus, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == '^':
			toks = append(toks, Token{Kind: TokCaret, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == '(':
			toks = append(toks, Token{Kind: TokLParen, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == ')':
			toks = append(toks, Token{Kind: TokRParen, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == ']':
			toks = append(toks, Token{Kind: TokRBracket, Span: Span{c.offset, c.offset + 1}})
			i++
		case c.ch == '[':
			if i+1 < n && isAsciiDigit(chars[i+1].ch) && chars[i+1].digit == classNone {
				tok, next, err := lexIsotopeBracket(chars, i)
				if err != nil {
					return nil, err
				}
				toks = append(toks, tok)
				i = next
			} else {
				toks = append(toks, Token{Kind: TokLBracket, Span: Span{c.offset, c.offset + 1}})
				i++
			}
		case isAsciiDigit(c.ch):
			tok, next := lexDigits(chars, i)
			toks = append(toks, tok)
			i = next
		case isUpper(c.ch):
			tok, next, err := lexElementOrResidual(chars, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		default:
			return nil, errAt(UnknownElement, c.offset, "unexpected lowercase letter outside an element symbol")
		}
	}
	toks = append(toks, Token{Kind: TokEOF, Span: Span{n, n}})
	return toks, nil
}

func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }
func isUpper(r rune) bool      { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool      { return r >= 'a' && r <= 'z' }

// lexDigits consumes the maximal run of digits sharing the same class
// (plain/subscript/superscript) starting at i, with checked accumulation
// so adversarial digit runs never wrap silently. Overflow against a
// concrete bound (count width, charge magnitude, isotope mass number) is
// checked downstream once the caller knows which bound applies.
func lexDigits(chars []normChar, i int) (Token, int) {
	class := chars[i].digit
	start := chars[i].offset
	var value uint64
	j := i
	for j < len(chars) && isAsciiDigit(chars[j].ch) && chars[j].digit == class {
		d := uint64(chars[j].ch - '0')
		if value > (1<<63)/10 {
			value = 1 << 63 // sentinel: definitely overflows any real width/charge bound
		} else {
			value = value*10 + d
		}
		j++
	}
	end := chars[j-1].offset + 1
	kind := TokDigitsPlain
	switch class {
	case classSubscript:
		kind = TokDigitsSubscript
	case classSuperscript:
		kind = TokDigitsSuperscript
	}
	return Token{Kind: kind, Span: Span{start, end}, Value: value}, j
}

// lexIsotopeBracket handles the "[" DigitsPlain ElementSymbol "]" lexical
// form. It is only entered once the caller has confirmed "[" is
// immediately followed by a plain digit, which is what distinguishes an
// isotope bracket from a structural group bracket.
func lexIsotopeBracket(chars []normChar, i int) (Token, int, error) {
	start := chars[i].offset
	j := i + 1
	digitsTok, next := lexDigits(chars, j)
	if digitsTok.Value == 0 || digitsTok.Value > 999 {
		return Token{}, 0, errSpan(MalformedIsotopeBracket, Span{start, digitsTok.Span.End}, "mass number must be in 1..999")
	}
	j = next
	if j >= len(chars) || !isUpper(chars[j].ch) {
		end := start + 1
		if j < len(chars) {
			end = chars[j].offset + 1
		}
		return Token{}, 0, errSpan(MalformedIsotopeBracket, Span{start, end}, "expected element symbol after mass number")
	}
	sym := string(chars[j].ch)
	symEnd := j + 1
	if symEnd < len(chars) && isLower(chars[symEnd].ch) {
		twoLetter := sym + string(chars[symEnd].ch)
		if _, ok := molecule.SymbolToElement(twoLetter); ok {
			sym = twoLetter
			symEnd++
		}
	}
	elem, ok := molecule.SymbolToElement(sym)
	if !ok {
		return Token{}, 0, errSpan(MalformedIsotopeBracket, Span{start, chars[symEnd-1].offset + 1}, "unknown element in isotope bracket: "+sym)
	}
	if symEnd >= len(chars) || chars[symEnd].ch != ']' {
		end := chars[symEnd-1].offset + 1
		if symEnd < len(chars) {
			end = chars[symEnd].offset + 1
		}
		return Token{}, 0, errSpan(MalformedIsotopeBracket, Span{start, end}, "unterminated isotope bracket")
	}
	end := chars[symEnd].offset + 1
	return Token{Kind: TokIsotopeAtom, Span: Span{start, end}, Elem: elem, MassNumber: uint16(digitsTok.Value)}, symEnd + 1, nil
}

// lexElementOrResidual implements the greedy two-letter-then-one-letter
// element symbol rule, falling back to the residual wildcard "R" when the
// single uppercase letter is not itself a known symbol.
func lexElementOrResidual(chars []normChar, i int) (Token, int, error) {
	start := chars[i].offset
	if i+1 < len(chars) && isLower(chars[i+1].ch) {
		two := string(chars[i].ch) + string(chars[i+1].ch)
		if elem, ok := molecule.SymbolToElement(two); ok {
			return Token{Kind: TokElement, Span: Span{start, chars[i+1].offset + 1}, Elem: elem}, i + 2, nil
		}
	}
	one := string(chars[i].ch)
	if elem, ok := molecule.SymbolToElement(one); ok {
		return Token{Kind: TokElement, Span: Span{start, start + 1}, Elem: elem}, i + 1, nil
	}
	if chars[i].ch == 'R' {
		return Token{Kind: TokResidual, Span: Span{start, start + 1}}, i + 1, nil
	}
	return Token{}, 0, errAt(UnknownElement, start, "unknown element symbol starting with "+one)
}
