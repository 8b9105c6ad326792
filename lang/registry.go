package lang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TFMV/cyclomatic/types"
)

// LanguageAnalyzer scores the functions found in a source snippet. Analyze
// is best-effort: a construct whose boundary cannot be located is skipped,
// never fatal.
type LanguageAnalyzer interface {
	Language() string
	Analyze(code string) types.Report
}

// UnsupportedLanguageError is returned when no analyzer is registered for a
// language tag. Supported carries the registered tag set, sorted.
type UnsupportedLanguageError struct {
	Language  string
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language for complexity analysis: %s (supported: %s)",
		e.Language, strings.Join(e.Supported, ", "))
}

// Registry maps lowercase language tags to analyzers. It is built once and
// never mutated afterwards, so concurrent lookups need no locking.
type Registry struct {
	analyzers map[string]LanguageAnalyzer
}

// NewRegistry builds a registry from the given analyzers, keyed by their
// lowercased language tags.
func NewRegistry(analyzers ...LanguageAnalyzer) *Registry {
	m := make(map[string]LanguageAnalyzer, len(analyzers))
	for _, a := range analyzers {
		m[strings.ToLower(a.Language())] = a
	}
	return &Registry{analyzers: m}
}

// NewDefaultRegistry returns a registry with the Java, JavaScript, and
// Python analyzers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(JavaAnalyzer{}, JavaScriptAnalyzer{}, PythonAnalyzer{})
}

// Analyze dispatches the snippet to the analyzer registered for language.
// The lookup is case-insensitive. An unknown tag yields an
// *UnsupportedLanguageError listing the supported set.
func (r *Registry) Analyze(code, language string) (types.Report, error) {
	a, ok := r.analyzers[strings.ToLower(language)]
	if !ok {
		return types.Report{}, &UnsupportedLanguageError{
			Language:  language,
			Supported: r.Languages(),
		}
	}
	return a.Analyze(code), nil
}

// Languages returns the sorted set of registered language tags.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.analyzers))
	for l := range r.analyzers {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}
