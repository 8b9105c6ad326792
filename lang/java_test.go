package lang_test

import (
	"testing"

	"github.com/TFMV/cyclomatic/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaAnalyzer_Basics(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantName       string
		wantLine       int
		wantComplexity int
		wantStatus     string
		wantNesting    int
	}{
		{
			name: "straight-line method",
			input: `public int add(int a, int b) {
    return a + b;
}`,
			wantName:       "add",
			wantLine:       1,
			wantComplexity: 1,
			wantStatus:     "simple",
			wantNesting:    0,
		},
		{
			name:           "control keywords inside a string literal",
			input:          `void f(){ String s = "if (x) {}"; }`,
			wantName:       "f",
			wantLine:       1,
			wantComplexity: 1,
			wantStatus:     "simple",
			wantNesting:    0,
		},
		{
			name: "control keywords inside comments",
			input: `public void g(int x) {
    // if (x) { while (x) {} }
    /* for (;;) { try {} catch (Exception e) {} } */
    return;
}`,
			wantName:       "g",
			wantLine:       1,
			wantComplexity: 1,
			wantStatus:     "simple",
			wantNesting:    0,
		},
		{
			name: "nested if pays the surcharge",
			input: `public void f(int a, int b) {
    if (a > 0) {
        if (b > 0) {
        }
    }
}`,
			wantName: "f",
			wantLine: 1,
			// 1 base + 1 outer if + 2 for the nested if
			wantComplexity: 4,
			wantStatus:     "simple",
			wantNesting:    2,
		},
		{
			name: "switch labels and ternary",
			input: `public int pick(int x) {
    switch (x) {
        case 1:
            return 1;
        case 2:
            return 2;
        default:
            return x > 0 ? 1 : 0;
    }
}`,
			wantName: "pick",
			wantLine: 1,
			// 1 base + 2 case + 1 default + 1 '?'
			wantComplexity: 5,
			wantStatus:     "simple",
			wantNesting:    1,
		},
		{
			name: "try catch and short-circuit operators",
			input: `public void risky(int a, int b) {
    try {
        if (a > 0 && b > 0) {
            work();
        }
    } catch (Exception e) {
        log(e);
    }
}`,
			wantName: "risky",
			wantLine: 1,
			// 1 base + 1 try + 2 nested if + 1 '&&' + 1 catch
			wantComplexity: 6,
			wantStatus:     "moderate",
			wantNesting:    2,
		},
		{
			name: "synchronized counts as a decision point",
			input: `public void locked(Object mu) {
    synchronized (mu) {
        touch();
    }
}`,
			wantName: "locked",
			wantLine: 1,
			// 1 base + 1 synchronized
			wantComplexity: 2,
			wantStatus:     "simple",
			wantNesting:    1,
		},
	}

	analyzer := lang.JavaAnalyzer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := analyzer.Analyze(tt.input)
			require.Len(t, report.Methods, 1)

			m := report.Methods[0]
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, tt.wantLine, m.Line)
			assert.Equal(t, tt.wantComplexity, m.Complexity)
			assert.Equal(t, tt.wantStatus, m.Status)
			assert.Equal(t, tt.wantNesting, m.NestingDepth)

			assert.Equal(t, 1, report.Summary.TotalMethods)
			assert.Equal(t, tt.wantComplexity, report.Summary.TotalComplexity)
		})
	}
}

func TestJavaAnalyzer_MultipleMethods(t *testing.T) {
	input := `public class Sample {
    public int first(int x) {
        if (x > 0) {
            return x;
        }
        return 0;
    }

    public int second(int y) {
        return y;
    }
}`

	report := lang.JavaAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 2)

	assert.Equal(t, "first", report.Methods[0].Name)
	assert.Equal(t, 2, report.Methods[0].Line)
	assert.Equal(t, "second", report.Methods[1].Name)
	assert.Equal(t, 9, report.Methods[1].Line)

	sum := 0
	for _, m := range report.Methods {
		assert.GreaterOrEqual(t, m.Complexity, 1)
		sum += m.Complexity
	}
	assert.Equal(t, sum, report.Summary.TotalComplexity)
}

func TestJavaAnalyzer_UnterminatedMethodIsSkipped(t *testing.T) {
	input := `public void broken(int x) {
    if (x > 0) {

public int ok() {
    return 1;
}`

	report := lang.JavaAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)
	assert.Equal(t, "ok", report.Methods[0].Name)
	assert.Equal(t, 1, report.Methods[0].Complexity)
}

func TestJavaAnalyzer_ComplexStatus(t *testing.T) {
	input := `public boolean gate(boolean a, boolean b, boolean c, boolean d, boolean e,
        boolean f, boolean g, boolean h, boolean i, boolean j) {
    if (a && b && c && d && e && f && g && h && i && j) {
        return true;
    }
    return false;
}`

	report := lang.JavaAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)
	// 1 base + 1 if + 9 '&&'
	assert.Equal(t, 11, report.Methods[0].Complexity)
	assert.Equal(t, "complex", report.Methods[0].Status)
}

func TestJavaAnalyzer_NoMethods(t *testing.T) {
	report := lang.JavaAnalyzer{}.Analyze("// nothing but commentary\n")
	assert.Empty(t, report.Methods)
	assert.Equal(t, 0, report.Summary.TotalMethods)
	assert.Equal(t, 0, report.Summary.TotalComplexity)
}
