package lang

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/TFMV/cyclomatic/types"
)

// jsFunctionRe matches the common JavaScript function shapes up to and
// including the opening brace: named declarations, const/let/var function
// expressions, arrow functions, and bare class or object methods. The first
// non-empty capture group is the name; a match with no name gets a
// generated one. The bare-method alternative is deliberately permissive and
// can match call-like syntax; that is a known limit of the heuristic.
var jsFunctionRe = regexp.MustCompile(
	`(?:\bfunction\s+([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*\{|` +
		`(?:const|let|var)\s+([A-Za-z_$][\w$]*)?\s*=\s*function\s*\([^)]*\)\s*\{|` +
		`(?:const|let|var)?\s*([A-Za-z_$][\w$]*)?\s*=\s*\([^)]*\)\s*=>\s*\{|` +
		`([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*\{)`)

// JavaScriptAnalyzer scores JavaScript functions. No nesting surcharge:
// every control keyword match counts exactly 1. Template literals are
// masked and may span lines.
type JavaScriptAnalyzer struct{}

func (JavaScriptAnalyzer) Language() string { return "javascript" }

func (JavaScriptAnalyzer) Analyze(code string) types.Report {
	methods := []types.Method{}
	totalComplexity := 0

	idx := 0
	for idx < len(code) {
		loc := jsFunctionRe.FindStringSubmatchIndex(code[idx:])
		if loc == nil {
			break
		}
		sigStart := idx + loc[0]
		bodyStart := idx + loc[1]

		name := ""
		for g := 1; g <= 4; g++ {
			if loc[2*g] >= 0 {
				name = code[idx+loc[2*g] : idx+loc[2*g+1]]
				break
			}
		}
		if name == "" {
			name = fmt.Sprintf("anonymous_or_unnamed_function_%d", len(methods)+1)
		}
		line := lineNumber(code, sigStart)

		bodyEnd := findBlockEnd(code, bodyStart, true)
		if bodyEnd == -1 {
			slog.Debug("function body not terminated, skipping", "language", "javascript", "function", name, "line", line)
			idx = sigStart + 1
			continue
		}

		body := maskCurly(code[bodyStart:bodyEnd], true)
		control, depth := scanControl(body, false)
		complexity := 1 + control + countDecisionPoints(body, false)

		methods = append(methods, types.Method{
			Name:         name,
			Line:         line,
			Complexity:   complexity,
			Status:       statusFor(complexity),
			NestingDepth: depth,
		})
		totalComplexity += complexity
		idx = bodyEnd
	}

	return types.Report{
		Summary: types.Summary{TotalMethods: len(methods), TotalComplexity: totalComplexity},
		Methods: methods,
	}
}
