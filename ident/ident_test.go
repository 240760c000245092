package ident

import (
	"regexp"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

var (
	plainIdent    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	verbatimIdent = regexp.MustCompile(`^@?[A-Za-z_][A-Za-z0-9_]*$`)
)

func legal(r Rules, s string) bool {
	if r.Language == "csharp" {
		return verbatimIdent.MatchString(s)
	}
	return plainIdent.MatchString(s)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Operator", "operator"},
		{"PosArgs", "posArgs"},
		{"already", "already"},
		{"X", "x"},
		{"", ""},
		{"Ärger", "ärger"},
		{"_Private", "_Private"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerFirst(tt.input))
		})
	}
}

func TestParam_Examples(t *testing.T) {
	tests := []struct {
		rules    Rules
		input    string
		expected string
	}{
		{CSharp, "Operator", "@operator"},
		{CSharp, "Object", "@object"},
		{CSharp, "Left", "left"},
		{CSharp, "This", "@this"},
		{Go, "Type", "type_"},
		{Go, "Else", "else_"},
		{Go, "Operator", "operator"},
		{Go, "Var", "var_"},
		{Python, "Lambda", "lambda_"},
		{Python, "Print", "print"},
		{Python, "Match", "match_"},
		{Python, "None", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.rules.Language+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rules.Param(tt.input))
		})
	}
}

// Every reserved word reachable through LowerFirst must come back escaped,
// legal, and no longer reserved.
func TestParam_ReservedWordsAreEscaped(t *testing.T) {
	for _, rules := range []Rules{Go, CSharp, Python} {
		for _, word := range rules.Words() {
			if LowerFirst(word) != word {
				continue // "None", "True": the lowered form is not the keyword
			}
			name := upperFirst(word)
			t.Run(rules.Language+"/"+name, func(t *testing.T) {
				got := rules.Param(name)
				assert.NotEqual(t, word, got)
				assert.True(t, legal(rules, got), "%q is not a legal %s identifier", got, rules.Language)
				assert.False(t, rules.IsReserved(got), "%q is still reserved", got)
			})
		}
	}
}

func TestParam_OtherNamesUnchanged(t *testing.T) {
	names := []string{"Left", "Right", "Callee", "Paren", "NamedArguments", "Initializer", "Condition"}
	for _, rules := range []Rules{Go, CSharp, Python} {
		for _, name := range names {
			assert.Equal(t, LowerFirst(name), rules.Param(name), "%s/%s", rules.Language, name)
		}
	}
}

func TestParam_GoPredeclaredConstants(t *testing.T) {
	assert.Equal(t, "nil_", Go.Param("Nil"))
	assert.Equal(t, "true_", Go.Param("True"))
	assert.Equal(t, "false_", Go.Param("False"))
	assert.Equal(t, "nil", Python.Param("Nil"))
}

func TestSafe_NilEscape(t *testing.T) {
	r := Rules{Language: "bare", Keywords: map[string]bool{"if": true}}
	assert.True(t, r.IsReserved("if"))
	assert.Equal(t, "if", r.Safe("if"))
}

func TestEscapeRules(t *testing.T) {
	assert.Equal(t, "@class", Prefix("@")("class"))
	assert.Equal(t, "class_", Suffix("_")("class"))
}

func TestWordsSorted(t *testing.T) {
	words := Go.Words()
	assert.Len(t, words, 28)
	assert.IsNonDecreasing(t, words)
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Binary", "binary"},
		{"TypeExpr", "type_expr"},
		{"HTTPSConnection", "https_connection"},
		{"NamedArguments", "named_arguments"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "TypeExpr", ToPascalCase("type_expr"))
	assert.Equal(t, "Lexing", ToPascalCase("lexing"))
	assert.Equal(t, "KebabCase", ToPascalCase("kebab-case"))
	assert.Equal(t, "", ToPascalCase("__"))
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "typeExpr", ToCamelCase("type_expr"))
	assert.Equal(t, "", ToCamelCase(""))
}
