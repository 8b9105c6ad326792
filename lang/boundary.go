package lang

import "strings"

// findBlockEnd locates the end of a brace-delimited block. start must be the
// index just past the block's opening brace; the scan keeps its own comment
// and string state so braces inside literals never count. It returns the
// index one past the balancing closing brace, or -1 when the block never
// closes. backtick enables template-literal state for JavaScript.
//
// Masking alone is not enough here: brace positions interleaved with
// literals and comments have to be tracked against the raw text.
func findBlockEnd(code string, start int, backtick bool) int {
	depth := 1
	var inDouble, inSingle, inBack bool
	var inBlockComment, inLineComment bool

	for i := start; i < len(code); i++ {
		ch := code[i]
		var next, prev byte
		if i+1 < len(code) {
			next = code[i+1]
		}
		if i > 0 {
			prev = code[i-1]
		}

		if !inDouble && !inSingle && !inBack && !inBlockComment && ch == '/' && next == '/' {
			inLineComment = true
			i++
			continue
		}
		if inLineComment && ch == '\n' {
			inLineComment = false
			continue
		}

		if !inDouble && !inSingle && !inBack && !inLineComment && ch == '/' && next == '*' {
			inBlockComment = true
			i++
			continue
		}
		if inBlockComment && ch == '*' && next == '/' {
			inBlockComment = false
			i++
			continue
		}

		if inBlockComment || inLineComment {
			continue
		}

		if ch == '"' && prev != '\\' && !inSingle && !inBack {
			inDouble = !inDouble
			continue
		}
		if ch == '\'' && prev != '\\' && !inDouble && !inBack {
			inSingle = !inSingle
			continue
		}
		if backtick && ch == '`' && prev != '\\' && !inDouble && !inSingle {
			inBack = !inBack
			continue
		}

		if inDouble || inSingle || inBack {
			continue
		}

		if ch == '{' {
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// findPythonBlockEnd locates the end of a def block by indentation balance.
// defStart must point at the start of the def line. The body's reference
// indentation is the indentation of the first non-blank line after the def
// that is not a comment or docstring opener; the block runs until a code
// line indents less than that, until a sibling def at indent less than or
// equal to the def itself, or until end of input. It returns the index of
// the first byte past the block.
func findPythonBlockEnd(code string, defStart int) int {
	defLineStart := strings.LastIndexByte(code[:defStart], '\n') + 1

	initialIndent := 0
	for defLineStart+initialIndent < len(code) && isSpace(code[defLineStart+initialIndent]) {
		initialIndent++
	}

	// Raw split: the cumulative arithmetic below must stay byte-exact, so
	// any \r stays attached to its line. TrimSpace strips it either way.
	lines := strings.Split(code[defLineStart:], "\n")

	// Reference indentation for the body.
	bodyIndent := -1
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "'''") || strings.HasPrefix(trimmed, `"""`) {
			continue
		}
		bodyIndent = leadingWhitespace(lines[i])
		break
	}

	// Empty body: the block ends right after the def line.
	if bodyIndent == -1 {
		end := defLineStart + len(lines[0]) + 1
		if end > len(code) {
			end = len(code)
		}
		return end
	}

	cumulative := 0
	for i, line := range lines {
		cumulative += len(line) + 1
		if i == 0 {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "'''") || strings.HasPrefix(trimmed, `"""`) {
			continue
		}

		indent := leadingWhitespace(line)
		if indent < bodyIndent ||
			(indent <= initialIndent && strings.HasPrefix(trimmed, "def ")) {
			return defLineStart + cumulative - (len(line) + 1)
		}
	}
	return len(code)
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && isSpace(line[n]) {
		n++
	}
	return n
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

// splitLines splits on any common newline sequence without dropping empty
// lines.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
