package matrix

import "strconv"

// Parse reads a bracketed row-major matrix literal into a rows x cols
// matrix.
//
// Grammar: optional leading spaces, a single '[', then rows*cols
// numbers in row-major order separated by ',', each number optionally
// preceded by spaces. The delimiter after the final number (normally
// ']') is consumed but trailing content is not validated; existing
// configuration files rely on that leniency.
//
// The parse is a single forward pass over a bounds-checked cursor.
// It fails with a *ParseError when the opening bracket is missing, when
// the input ends before all elements are read, or when an element is
// not a valid number. The first error aborts the parse; no partial
// matrix is returned.
func Parse(s string, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ParseError{Code: ErrCodeBadShape, Pos: 0}
	}

	pos := 0
	pos, err := skipSpaces(s, pos)
	if err != nil {
		return nil, err
	}
	if s[pos] != '[' {
		return nil, &ParseError{Code: ErrCodeMissingBracket, Pos: pos}
	}
	pos++

	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			pos, err = skipSpaces(s, pos)
			if err != nil {
				return nil, err
			}
			start := pos
			for s[pos] != ',' && s[pos] != ']' {
				pos++
				if pos >= len(s) {
					return nil, &ParseError{Code: ErrCodeUnexpectedEnd, Pos: pos}
				}
			}
			v, perr := strconv.ParseFloat(s[start:pos], 64)
			if perr != nil {
				return nil, &ParseError{Code: ErrCodeBadNumber, Pos: start, Err: perr}
			}
			m.Set(i, j, v)
			pos++
		}
	}
	return m, nil
}

// skipSpaces advances past ' ' characters, failing with UNEXPECTED_END
// if the cursor runs off the input.
func skipSpaces(s string, pos int) (int, error) {
	for {
		if pos >= len(s) {
			return pos, &ParseError{Code: ErrCodeUnexpectedEnd, Pos: pos}
		}
		if s[pos] != ' ' {
			return pos, nil
		}
		pos++
	}
}
