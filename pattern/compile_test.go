package pattern_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	expressions "github.com/ilslv/cucumber-expressions-1"
	"github.com/ilslv/cucumber-expressions-1/pattern"
)

func mustCompile(t *testing.T, input string, resolver pattern.Resolver) *pattern.Pattern {
	t.Helper()
	expr, err := expressions.Parse(input)
	require.NoError(t, err)
	compiled, err := pattern.Compile(expr, resolver)
	require.NoError(t, err)
	return compiled
}

func TestCompile(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "^$"},
		{"a", "^a$"},
		{"(a)", "^(?:a)?$"},
		{"()", "^(?:)?$"},
		{"a/b(c)", "^(?:a|b(?:c)?)$"},
		{"a/b c/d/e", "^(?:a|b) (?:c|d|e)$"},
		{"{int}", `^((?:-?\d+)|(?:\d+))$`},
		{"{word}", `^([^\s]+)$`},
		{`^$[]\(\)\\.|?*+`, `^\^\$\[\]\(\)\\\.\|\?\*\+$`},
		{"I have a cat/dog", "^I have a (?:cat|dog)$"},
		{"I have (a )cucumber", "^I have (?:a )?cucumber$"},
		{"Привет, Мир(ы)!", "^Привет, Мир(?:ы)?!$"},
		{"three (hungry )blind/deaf mice", "^three (?:(?:hungry )?blind|deaf) mice$"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			compiled := mustCompile(t, test.input, nil)
			require.Equal(t, test.want, compiled.Source)
		})
	}
}

func TestCompileParameterOrder(t *testing.T) {
	resolver := pattern.CustomTypes(map[string]string{"x": `\d+`, "y": `\w+`})
	compiled := mustCompile(t, "a {x} b {y} c", resolver)
	require.Equal(t, `^a (\d+) b (\w+) c$`, compiled.Source)
	require.Equal(t, []pattern.Parameter{
		{Name: "x", Position: 0, Pattern: `\d+`},
		{Name: "y", Position: 1, Pattern: `\w+`},
	}, compiled.Parameters)
}

func TestCompileParameterInOptional(t *testing.T) {
	compiled := mustCompile(t, "I said ({int} times )hi {word}", nil)
	require.Equal(t, `^I said (?:((?:-?\d+)|(?:\d+)) times )?hi ([^\s]+)$`, compiled.Source)
	require.Equal(t, []pattern.Parameter{
		{Name: "int", Position: 0, Pattern: `(?:-?\d+)|(?:\d+)`},
		{Name: "word", Position: 1, Pattern: `[^\s]+`},
	}, compiled.Parameters)

	re := regexp.MustCompile(compiled.Source)
	require.Equal(t, []string{"3", "bob"}, re.FindStringSubmatch("I said 3 times hi bob")[1:])
	require.Equal(t, []string{"", "bob"}, re.FindStringSubmatch("I said hi bob")[1:])
}

func TestCompileCustomTypes(t *testing.T) {
	resolver := pattern.CustomTypes(map[string]string{"custom": "custom"})
	compiled := mustCompile(t, "{custom}", resolver)
	require.Equal(t, "^(custom)$", compiled.Source)
}

func TestCompileUnknownType(t *testing.T) {
	expr, err := expressions.Parse("I have a {unknownType}")
	require.NoError(t, err)
	_, err = pattern.Compile(expr, nil)
	uerr := &pattern.UnknownTypeError{}
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "unknownType", uerr.Name)
	require.Equal(t, expressions.Span{Start: 9, End: 22}, uerr.Span)
	require.EqualError(t, err, `9..22: unknown parameter type "unknownType"`)

	var head expressions.Error
	require.ErrorAs(t, err, &head)
	require.Equal(t, expressions.Span{Start: 9, End: 22}, head.Bounds())
}

func TestCompileIsPure(t *testing.T) {
	expr, err := expressions.Parse("I have {int} cucumber(s)")
	require.NoError(t, err)
	first, err := pattern.Compile(expr, nil)
	require.NoError(t, err)
	second, err := pattern.Compile(expr, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompiledPatternsAreValidRE2(t *testing.T) {
	inputs := []string{
		"I have {int} cucumber(s) in my belly/stomach",
		"{float} of {string} or {word}",
		"()",
		`\{escaped\} (text)`,
	}
	for _, input := range inputs {
		compiled := mustCompile(t, input, nil)
		_, err := regexp.Compile(compiled.Source)
		require.NoError(t, err, "source: %s", compiled.Source)
	}
}

func TestCompileMatching(t *testing.T) {
	re, err := pattern.Regex("I have a cat/dog", nil)
	require.NoError(t, err)
	require.True(t, re.MatchString("I have a cat"))
	require.True(t, re.MatchString("I have a dog"))
	require.False(t, re.MatchString("I have a bird"))

	re, err = pattern.Regex("I have (a )cucumber", nil)
	require.NoError(t, err)
	require.True(t, re.MatchString("I have a cucumber"))
	require.True(t, re.MatchString("I have cucumber"))
	require.False(t, re.MatchString("I have a gherkin"))
}

func TestRegexParseError(t *testing.T) {
	_, err := pattern.Regex("(a(b))", nil)
	perr := &expressions.ParseError{}
	require.ErrorAs(t, err, &perr)
	require.Equal(t, expressions.NestedOptional, perr.Kind)
}

func TestBuiltinMatching(t *testing.T) {
	tests := []struct {
		expr    string
		match   []string
		nomatch []string
	}{
		{"{int}", []string{"42", "-17", "0"}, []string{"4.2", "four", ""}},
		{"{float}", []string{"3.14", "-2.5", ".5", "1e6", "1.5E+3", "7"}, []string{".", "e5", "one"}},
		{"{word}", []string{"banana", "b4n4n4"}, []string{"two words", ""}},
		{"{string}", []string{`"hello"`, `'hello'`, `"esc \" aped"`}, []string{"bare", `"mismatched'`}},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			re, err := pattern.Regex(test.expr, nil)
			require.NoError(t, err)
			for _, sample := range test.match {
				require.True(t, re.MatchString(sample), "%s should match %q", re, sample)
			}
			for _, sample := range test.nomatch {
				require.False(t, re.MatchString(sample), "%s should not match %q", re, sample)
			}
		})
	}
}
