// Package ident derives identifiers that are legal in a target language.
//
// The reserved words of each language are data (a keyword set) and the
// escape rule is a plain function, so a new target only supplies a Rules
// value. Nothing here validates names: callers pass PascalCase field and
// shape names and get back the parameter spelling for one language.
package ident

import "sort"

// Rules describes the reserved words of one target language and how to escape them.
type Rules struct {
	// Language is the target name, used in logs and test names
	Language string

	// Keywords is the reserved-word set
	Keywords map[string]bool

	// Escape rewrites a reserved word into a legal spelling
	Escape func(string) string
}

// Prefix returns an escape rule that prepends marker (C#: "@operator").
func Prefix(marker string) func(string) string {
	return func(s string) string { return marker + s }
}

// Suffix returns an escape rule that appends marker (Go, Python: "type_").
func Suffix(marker string) func(string) string {
	return func(s string) string { return s + marker }
}

// Built-in rule sets
var (
	Go     = Rules{Language: "go", Keywords: goKeywords, Escape: Suffix("_")}
	CSharp = Rules{Language: "csharp", Keywords: csharpKeywords, Escape: Prefix("@")}
	Python = Rules{Language: "python", Keywords: pythonKeywords, Escape: Suffix("_")}
)

// IsReserved reports whether s is a reserved word
func (r Rules) IsReserved(s string) bool {
	return r.Keywords[s]
}

// Safe returns s, escaped when it is a reserved word
func (r Rules) Safe(s string) string {
	if r.IsReserved(s) && r.Escape != nil {
		return r.Escape(s)
	}
	return s
}

// Param derives a parameter name from a PascalCase name:
// lowercase the first rune, then escape the result if it is reserved.
func (r Rules) Param(name string) string {
	return r.Safe(LowerFirst(name))
}

// Words returns the reserved words in sorted order
func (r Rules) Words() []string {
	words := make([]string, 0, len(r.Keywords))
	for w := range r.Keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
