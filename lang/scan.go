package lang

import (
	"regexp"
	"strings"
)

// Control-structure patterns for the curly-brace languages. Each pattern
// counts at most once per physical line.
var (
	ifRe    = regexp.MustCompile(`\bif\s*\(`)
	forRe   = regexp.MustCompile(`\bfor\s*\(`)
	whileRe = regexp.MustCompile(`\bwhile\s*\(`)
	doRe    = regexp.MustCompile(`\bdo\s*\{`)
	tryRe   = regexp.MustCompile(`\btry\s*\{`)

	elseRe   = regexp.MustCompile(`\belse\b`)
	elseIfRe = regexp.MustCompile(`^\s*if\b`)
)

var curlyControlRes = []*regexp.Regexp{ifRe, forRe, whileRe, doRe, tryRe}

// Decision-point patterns, matched over the whole masked body.
var (
	caseRe         = regexp.MustCompile(`\bcase\s+[^:]+:`)
	defaultRe      = regexp.MustCompile(`\bdefault\s*:`)
	logicalRe      = regexp.MustCompile(`&&|\|\|`)
	catchRe        = regexp.MustCompile(`\bcatch\s*\(`)
	synchronizedRe = regexp.MustCompile(`\bsynchronized\b`)
)

// hasBareElse reports whether the line contains an else that does not start
// an else-if chain.
func hasBareElse(line string) bool {
	for _, loc := range elseRe.FindAllStringIndex(line, -1) {
		if !elseIfRe.MatchString(line[loc[1]:]) {
			return true
		}
	}
	return false
}

// scanControl walks the masked body line by line, counting control
// structures and tracking brace nesting. When surcharge is set (the Java
// policy), a keyword matched while the running depth is above zero counts
// double. The depth update runs after the keyword check on each line, is
// clamped at zero, and its running maximum is the reported nesting depth.
func scanControl(body string, surcharge bool) (count, maxDepth int) {
	depth := 0
	for _, line := range splitLines(body) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		hits := 0
		for _, re := range curlyControlRes {
			if re.MatchString(trimmed) {
				hits++
			}
		}
		if hasBareElse(trimmed) {
			hits++
		}
		if surcharge && depth > 0 {
			count += 2 * hits
		} else {
			count += hits
		}

		depth += strings.Count(trimmed, "{")
		if depth > maxDepth {
			maxDepth = depth
		}
		depth -= strings.Count(trimmed, "}")
		if depth < 0 {
			depth = 0
		}
	}
	return count, maxDepth
}

// countDecisionPoints counts case/default labels, short-circuit operators,
// every literal '?', and catch clauses over the whole masked body. The Java
// engine additionally counts synchronized occurrences. Each occurrence is
// exactly +1 with no deduplication.
func countDecisionPoints(body string, synchronized bool) int {
	count := len(caseRe.FindAllString(body, -1))
	count += len(defaultRe.FindAllString(body, -1))
	count += len(logicalRe.FindAllString(body, -1))
	count += strings.Count(body, "?")
	count += len(catchRe.FindAllString(body, -1))
	if synchronized {
		count += len(synchronizedRe.FindAllString(body, -1))
	}
	return count
}

// statusFor maps a complexity score to its tier.
func statusFor(complexity int) string {
	switch {
	case complexity <= 5:
		return "simple"
	case complexity <= 10:
		return "moderate"
	default:
		return "complex"
	}
}

// lineNumber returns the 1-based line of a byte offset.
func lineNumber(code string, index int) int {
	if index > len(code) {
		index = len(code)
	}
	return 1 + strings.Count(code[:index], "\n")
}
