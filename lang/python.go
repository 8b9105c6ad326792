package lang

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/TFMV/cyclomatic/types"
)

// pyDefRe matches a def line anchored at the start of a physical line so
// the match always begins at the line's indentation.
var pyDefRe = regexp.MustCompile(`(?m)^[ \t]*def\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^)]*\):`)

// Colon-terminated control forms, matched at most once per trimmed line,
// except the logical operators, which count every occurrence.
var (
	pyIfRe      = regexp.MustCompile(`\b(if|elif)\b[^:]*:\s*|\belse\s*:`)
	pyLoopRe    = regexp.MustCompile(`\b(for|while)\b[^:]*:\s*`)
	pyTryRe     = regexp.MustCompile(`\b(try|except|finally|with)\b[^:]*\s*:`)
	pyLogicalRe = regexp.MustCompile(`\b(and|or)\b`)
	pyTernaryRe = regexp.MustCompile(`\b\S+\s+if\s+.*?\s+else\s+[^\s]+\b`)
)

// PythonAnalyzer scores Python functions. Boundaries come from indentation
// rather than braces, and nesting depth is the indentation relative to the
// def line divided by four, tracked as a running maximum.
type PythonAnalyzer struct{}

func (PythonAnalyzer) Language() string { return "python" }

func (PythonAnalyzer) Analyze(code string) types.Report {
	methods := []types.Method{}
	totalComplexity := 0

	idx := 0
	for idx < len(code) {
		loc := pyDefRe.FindStringSubmatchIndex(code[idx:])
		if loc == nil {
			break
		}
		defStart := idx + loc[0]
		name := code[idx+loc[2] : idx+loc[3]]
		line := lineNumber(code, defStart)

		blockEnd := findPythonBlockEnd(code, defStart)
		if blockEnd <= defStart {
			slog.Debug("function block not located, skipping", "language", "python", "function", name, "line", line)
			idx = defStart + 1
			continue
		}

		block := maskPython(code[defStart:blockEnd])
		complexity, depth := scanPythonBlock(block)

		methods = append(methods, types.Method{
			Name:         name,
			Line:         line,
			Complexity:   complexity,
			Status:       statusFor(complexity),
			NestingDepth: depth,
		})
		totalComplexity += complexity
		idx = blockEnd
	}

	return types.Report{
		Summary: types.Summary{TotalMethods: len(methods), TotalComplexity: totalComplexity},
		Methods: methods,
	}
}

// scanPythonBlock scores a masked def block, def line included. The def
// line contributes only the base complexity of 1; nested def lines still
// feed the depth tracking but add no decision points of their own.
func scanPythonBlock(block string) (complexity, maxDepth int) {
	complexity = 1
	defIndent := -1

	for _, line := range splitLines(block) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lead := leadingWhitespace(line)
		if defIndent == -1 {
			defIndent = lead
		}
		rel := lead - defIndent
		if rel < 0 {
			rel = 0
		}
		if d := rel / 4; d > maxDepth {
			maxDepth = d
		}

		if strings.HasPrefix(trimmed, "def ") {
			continue
		}

		if pyIfRe.MatchString(trimmed) {
			complexity++
		}
		if pyLoopRe.MatchString(trimmed) {
			complexity++
		}
		if pyTryRe.MatchString(trimmed) {
			complexity++
		}
		complexity += len(pyLogicalRe.FindAllString(trimmed, -1))
		if pyTernaryRe.MatchString(trimmed) {
			complexity++
		}
	}
	return complexity, maxDepth
}
