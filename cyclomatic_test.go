package cyclomatic_test

import (
	"testing"

	"github.com/TFMV/cyclomatic"
	"github.com/TFMV/cyclomatic/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_AllLanguages(t *testing.T) {
	tests := []struct {
		name     string
		language string
		code     string
	}{
		{
			name:     "java",
			language: "java",
			code: `public int f(int x) {
    if (x > 0) {
        return x;
    }
    return 0;
}`,
		},
		{
			name:     "javascript",
			language: "javascript",
			code: `function f(x) {
    for (let i = 0; i < x; i++) {
        work(i);
    }
}`,
		},
		{
			name:     "python",
			language: "python",
			code: `def f(x):
    while x > 0:
        x -= 1
    return x
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := cyclomatic.Analyze(tt.code, tt.language)
			require.NoError(t, err)
			require.NotEmpty(t, report.Methods)

			sum := 0
			for _, m := range report.Methods {
				assert.GreaterOrEqual(t, m.Complexity, 1)
				assert.GreaterOrEqual(t, m.NestingDepth, 0)
				assert.GreaterOrEqual(t, m.Line, 1)
				sum += m.Complexity
			}
			assert.Equal(t, sum, report.Summary.TotalComplexity)
			assert.Equal(t, len(report.Methods), report.Summary.TotalMethods)
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	code := `def f(x):
    return 1 if x else 0
`
	first, err := cyclomatic.Analyze(code, "python")
	require.NoError(t, err)
	second, err := cyclomatic.Analyze(code, "python")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_UnsupportedLanguage(t *testing.T) {
	_, err := cyclomatic.Analyze("puts 1", "ruby")
	require.Error(t, err)

	var unsupported *lang.UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, []string{"java", "javascript", "python"}, unsupported.Supported)
}

func TestSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"java", "javascript", "python"}, cyclomatic.SupportedLanguages())
}
