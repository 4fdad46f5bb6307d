// Package formula coding=utf-8
// @Project : go-chem
// @File    : charge.go
package formula

// stripCharge locates and removes the single trailing charge token group
// from body: a formula carries zero or one charge, and it must be the
// last content in the input. It recognises, from the end of the stream:
// an optional leading "^", then either a bare sign (magnitude 1), a sign
// followed by digits (SignDigits), or digits followed by a sign
// (DigitsSign). Anything left over that still looks like a charge token
// is reported as ChargeMisplaced or MultipleCharges.
func stripCharge(body []Token) ([]Token, *int32, error) {
	if len(body) == 0 {
		return body, nil, nil
	}
	isSign := func(t Token) bool { return t.Kind == TokPlus || t.Kind == TokMinus }
	isDigits := func(t Token) bool { return t.Kind == TokDigitsPlain || t.Kind == TokDigitsSuperscript }
	signOf := func(t Token) int32 {
		if t.Kind == TokPlus {
			return 1
		}
		return -1
	}

	end := len(body)
	last := body[end-1]

	var sign int32
	var mag uint64
	var start int
	matched := false

	switch {
	case isSign(last):
		if end-2 >= 0 && isDigits(body[end-2]) {
			mag = body[end-2].Value
			start = end - 2
		} else {
			mag = 1
			start = end - 1
		}
		sign = signOf(last)
		matched = true
	case isDigits(last):
		if end-2 >= 0 && isSign(body[end-2]) {
			mag = last.Value
			sign = signOf(body[end-2])
			start = end - 2
			matched = true
		}
	}
	if !matched {
		return body, nil, nil
	}

	if start-1 >= 0 && body[start-1].Kind == TokCaret {
		start--
	}
	if mag > 9999 {
		return nil, nil, errSpan(ChargeOverflow, Span{body[start].Span.Start, body[end-1].Span.End}, "charge magnitude exceeds 9999")
	}

	rest := body[:start]
	for i, t := range rest {
		if t.Kind == TokCaret {
			return nil, nil, errAt(ChargeMisplaced, t.Span.Start, "charge marker is not at the end of the input")
		}
		if isSign(t) {
			paired := (i+1 < len(rest) && isDigits(rest[i+1])) || (i-1 >= 0 && isDigits(rest[i-1]))
			kind := ChargeMisplaced
			if paired {
				kind = MultipleCharges
			}
			return nil, nil, errAt(kind, t.Span.Start, "more than one charge-like token in the input")
		}
	}

	val := int32(mag) * sign
	return rest, &val, nil
}
