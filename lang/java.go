package lang

import (
	"log/slog"
	"regexp"

	"github.com/TFMV/cyclomatic/types"
)

// javaMethodRe matches a Java method signature up to and including the
// opening brace: optional modifiers, an optional generic type parameter
// list, at least one return-type word, the method name, a parameter list
// without nested parentheses, and an optional throws clause. The name is
// the first capture group.
var javaMethodRe = regexp.MustCompile(
	`(?:(?:public|protected|private|static|final|abstract|synchronized|native)\s+)*` +
		`(?:<[^>]+>\s+)?` +
		`(?:[A-Za-z_$][\w$.<>\[\]]*\s+)+` +
		`([A-Za-z_$][\w$]*)\s*\(([^)]*)\)\s*(?:throws\s+[^{]*)?\{`)

// JavaAnalyzer scores Java methods. It applies the nesting surcharge: a
// control keyword matched while brace depth is above zero counts 2 instead
// of 1. synchronized occurrences count as decision points.
type JavaAnalyzer struct{}

func (JavaAnalyzer) Language() string { return "java" }

func (JavaAnalyzer) Analyze(code string) types.Report {
	methods := []types.Method{}
	totalComplexity := 0

	idx := 0
	for idx < len(code) {
		loc := javaMethodRe.FindStringSubmatchIndex(code[idx:])
		if loc == nil {
			break
		}
		sigStart := idx + loc[0]
		bodyStart := idx + loc[1]
		name := code[idx+loc[2] : idx+loc[3]]
		line := lineNumber(code, sigStart)

		bodyEnd := findBlockEnd(code, bodyStart, false)
		if bodyEnd == -1 {
			slog.Debug("method body not terminated, skipping", "language", "java", "method", name, "line", line)
			idx = sigStart + 1
			continue
		}

		body := maskCurly(code[bodyStart:bodyEnd], false)
		control, depth := scanControl(body, true)
		complexity := 1 + control + countDecisionPoints(body, true)

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
