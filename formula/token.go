// Package formula coding=utf-8
// @Project : go-chem
// @File    : token.go
package formula

import "github.com/cx-luo/chemformula/molecule"

// TokenKind enumerates the lexical tokens the tokenizer produces.
type TokenKind int

const (
	TokElement TokenKind = iota
	TokIsotopeAtom        // composite "[nE]" token, mass number + element already resolved
	TokDigitsPlain
	TokDigitsSubscript
	TokDigitsSuperscript
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokDot
	TokPlus
	TokMinus
	TokCaret
	TokResidual
	TokEOF
)

// Token is one lexical unit, carrying its span in the original input and,
// for element/digit/isotope tokens, its resolved value.
type Token struct {
	Kind       TokenKind
	Span       Span
	Elem       molecule.Element // TokElement, TokIsotopeAtom
	MassNumber uint16           // TokIsotopeAtom
	Value      uint64           // TokDigitsPlain / TokDigitsSubscript / TokDigitsSuperscript
}
