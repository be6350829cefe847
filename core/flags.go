package core

import "strings"

// Flags is a container for the five pattern-wide regex modifiers. All
// fields default to false and are established exactly once, by an optional
// %flags directive at the start of a pattern (see splitDirective). Flags
// are never embedded in AST or IR nodes; they travel alongside the tree as
// a separate value, consumed by the Parser (Extended affects tokenization)
// and by the Emitter (they become the inline flag prefix).
type Flags struct {
	IgnoreCase bool
	Multiline  bool
	DotAll     bool
	Unicode    bool
	Extended   bool
}

// ToMap serializes Flags to the map representation the CLI prints in its
// JSON output and debug log.
func (f Flags) ToMap() map[string]bool {
	return map[string]bool{
		"ignoreCase": f.IgnoreCase,
		"multiline":  f.Multiline,
		"dotAll":     f.DotAll,
		"unicode":    f.Unicode,
		"extended":   f.Extended,
	}
}

// FlagsFromLetters builds Flags from a run of flag letters (case-insensitive
// i, m, s, u, x). Unknown letters are ignored and duplicates are idempotent;
// the %flags directive lexer is responsible for stripping separators before
// calling this.
func FlagsFromLetters(letters string) Flags {
	var f Flags
	for _, ch := range strings.ToLower(letters) {
		switch ch {
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			f.DotAll = true
		case 'u':
			f.Unicode = true
		case 'x':
			f.Extended = true
		}
	}
	return f
}
