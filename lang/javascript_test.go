package lang_test

import (
	"testing"

	"github.com/TFMV/cyclomatic/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaScriptAnalyzer_FunctionShapes(t *testing.T) {
	input := `const sum = (a, b) => {
    return a + b;
};

const mul = function(a, b) {
    return a * b;
};

function greet(name) {
    if (name) {
        return "hi " + name;
    } else {
        return "hi";
    }
}

class Calc {
    div(a, b) {
        return a / b;
    }
}`

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 4)

	assert.Equal(t, "sum", report.Methods[0].Name)
	assert.Equal(t, 1, report.Methods[0].Line)
	assert.Equal(t, "mul", report.Methods[1].Name)
	assert.Equal(t, 5, report.Methods[1].Line)
	assert.Equal(t, "greet", report.Methods[2].Name)
	assert.Equal(t, 9, report.Methods[2].Line)
	assert.Equal(t, "div", report.Methods[3].Name)
	assert.Equal(t, 18, report.Methods[3].Line)

	// 1 base + 1 if + 1 bare else
	assert.Equal(t, 3, report.Methods[2].Complexity)
	assert.Equal(t, 6, report.Summary.TotalComplexity)
}

func TestJavaScriptAnalyzer_NoNestingSurcharge(t *testing.T) {
	input := `function f(a, b) {
    if (a) {
        if (b) {
        }
    }
}`

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)

	m := report.Methods[0]
	// Every matched keyword contributes exactly 1, unlike Java.
	assert.Equal(t, 3, m.Complexity)
	assert.Equal(t, 2, m.NestingDepth)
}

func TestJavaScriptAnalyzer_AnonymousFallbackName(t *testing.T) {
	input := `handlers[0] = () => {
    return 1;
};`

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)
	assert.Equal(t, "anonymous_or_unnamed_function_1", report.Methods[0].Name)
	assert.Equal(t, 1, report.Methods[0].Complexity)
}

func TestJavaScriptAnalyzer_TemplateLiteralMasked(t *testing.T) {
	input := "function tpl(x) {\n" +
		"    const s = `if (x) { while (y) {} } ? :`;\n" +
		"    return s;\n" +
		"}"

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)
	assert.Equal(t, 1, report.Methods[0].Complexity)
}

func TestJavaScriptAnalyzer_DecisionPoints(t *testing.T) {
	input := `function route(req) {
    switch (req.kind) {
        case "get":
            return fetch(req);
        default:
            break;
    }
    try {
        return req.ok && req.fast ? quick(req) : slow(req);
    } catch (err) {
        return null;
    }
}`

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)

	// 1 base + 1 try + 1 case + 1 default + 1 '&&' + 1 '?' + 1 catch
	assert.Equal(t, 7, report.Methods[0].Complexity)
	assert.Equal(t, "moderate", report.Methods[0].Status)
}

func TestJavaScriptAnalyzer_UnterminatedFunctionIsSkipped(t *testing.T) {
	input := `function broken(x) {
    if (x) {

function ok() {
    return 1;
}`

	report := lang.JavaScriptAnalyzer{}.Analyze(input)
	require.Len(t, report.Methods, 1)
	assert.Equal(t, "ok", report.Methods[0].Name)
}
