// Package cyclomatic estimates cyclomatic complexity of source snippets by
// heuristic lexical scanning. Per-language engines mask literal and comment
// text, locate function bodies by brace or indentation balance, and count
// control structures and decision points; a registry dispatches a language
// tag to the matching engine.
package cyclomatic

import (
	"github.com/TFMV/cyclomatic/analysis"
	"github.com/TFMV/cyclomatic/db"
	"github.com/TFMV/cyclomatic/lang"
	"github.com/TFMV/cyclomatic/types"
)

// defaultRegistry is built once before first use and read-only afterwards;
// concurrent calls need no locking.
var defaultRegistry = lang.NewDefaultRegistry()

// Analyze scores a snippet with the default registry. An unregistered
// language tag yields a *lang.UnsupportedLanguageError.
func Analyze(code, language string) (types.Report, error) {
	return defaultRegistry.Analyze(code, language)
}

// SupportedLanguages returns the sorted tags the default registry accepts.
func SupportedLanguages() []string {
	return defaultRegistry.Languages()
}

// NewAnalyzer creates a SurrealDB-backed analyzer for directory scans.
func NewAnalyzer(url, namespace, database, username, password string) (*analysis.Analyzer, error) {
	return analysis.NewAnalyzer(db.Config{
		URL:       url,
		Namespace: namespace,
		Database:  database,
		Username:  username,
		Password:  password,
	})
}
