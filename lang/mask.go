package lang

// Masking replaces comment and string-literal content with spaces so the
// keyword and operator scans never match literal text. Masked output has the
// same length and line structure as the input: every byte outside a literal
// keeps its position, newlines are kept everywhere, and string delimiters
// survive with blanked interiors. An unterminated literal or comment simply
// masks through to the end of the input.

type maskState int

const (
	maskCode maskState = iota
	maskLineComment
	maskBlockComment
	maskDouble
	maskSingle
	maskBacktick
	maskTripleSingle
	maskTripleDouble
)

// maskCurly masks Java and JavaScript source. backtick enables template
// literals, which may span lines.
func maskCurly(code string, backtick bool) string {
	out := []byte(code)
	state := maskCode

	for i := 0; i < len(code); i++ {
		ch := code[i]
		var next byte
		if i+1 < len(code) {
			next = code[i+1]
		}

		switch state {
		case maskCode:
			switch {
			case ch == '/' && next == '/':
				state = maskLineComment
				out[i], out[i+1] = ' ', ' '
				i++
			case ch == '/' && next == '*':
				state = maskBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			case ch == '"':
				state = maskDouble
			case ch == '\'':
				state = maskSingle
			case backtick && ch == '`':
				state = maskBacktick
			}
		case maskLineComment:
			if ch == '\n' {
				state = maskCode
			} else {
				out[i] = ' '
			}
		case maskBlockComment:
			if ch == '*' && next == '/' {
				state = maskCode
				out[i], out[i+1] = ' ', ' '
				i++
			} else if ch != '\n' {
				out[i] = ' '
			}
		case maskDouble, maskSingle, maskBacktick:
			closer := byte('"')
			if state == maskSingle {
				closer = '\''
			} else if state == maskBacktick {
				closer = '`'
			}
			switch {
			case ch == '\\' && i+1 < len(code):
				out[i] = ' '
				if next != '\n' {
					out[i+1] = ' '
				}
				i++
			case ch == closer:
				state = maskCode
			case ch != '\n':
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// maskPython masks Python source. Triple-quoted text is treated as a
// comment, so its delimiters are blanked too; # comments run to end of
// line; single and double quoted strings keep their delimiters and end at
// an unescaped closing quote or at the end of the line.
func maskPython(code string) string {
	out := []byte(code)
	state := maskCode

	for i := 0; i < len(code); i++ {
		ch := code[i]

		switch state {
		case maskCode:
			switch {
			case hasTriple(code, i, '\''):
				state = maskTripleSingle
				out[i], out[i+1], out[i+2] = ' ', ' ', ' '
				i += 2
			case hasTriple(code, i, '"'):
				state = maskTripleDouble
				out[i], out[i+1], out[i+2] = ' ', ' ', ' '
				i += 2
			case ch == '#':
				state = maskLineComment
				out[i] = ' '
			case ch == '\'':
				state = maskSingle
			case ch == '"':
				state = maskDouble
			}
		case maskLineComment:
			if ch == '\n' {
				state = maskCode
			} else {
				out[i] = ' '
			}
		case maskTripleSingle, maskTripleDouble:
			quote := byte('\'')
			if state == maskTripleDouble {
				quote = '"'
			}
			if hasTriple(code, i, quote) {
				state = maskCode
				out[i], out[i+1], out[i+2] = ' ', ' ', ' '
				i += 2
			} else if ch != '\n' {
				out[i] = ' '
			}
		case maskSingle, maskDouble:
			closer := byte('\'')
			if state == maskDouble {
				closer = '"'
			}
			switch {
			case ch == '\\' && i+1 < len(code):
				out[i] = ' '
				if code[i+1] != '\n' {
					out[i+1] = ' '
				}
				i++
			case ch == closer:
				state = maskCode
			case ch == '\n':
				state = maskCode
			default:
				out[i] = ' '
			}
		}
	}
	return string(out)
}

func hasTriple(code string, i int, quote byte) bool {
	return i+2 < len(code) && code[i] == quote && code[i+1] == quote && code[i+2] == quote
}
