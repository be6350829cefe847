package emitters

import (
	"testing"

	"github.com/thecyberlocal/strling/core"
)

func compileDSL(t *testing.T, dsl string) (core.Flags, core.IROp) {
	t.Helper()
	flags, ast, err := core.Parse(dsl)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", dsl, err)
	}
	ir, derr := core.Compile(ast)
	if derr != nil {
		t.Fatalf("Compile(%q) error: %v", dsl, derr)
	}
	return flags, ir
}

func TestBasicEmit(t *testing.T) {
	flags, ir := compileDSL(t, "^hello$")
	if got := Emit(ir, flags); got != "^hello$" {
		t.Errorf("expected %q, got %q", "^hello$", got)
	}
}

func TestAnchorEmit(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"^", "^"},
		{"$", "$"},
		{`\b`, `\b`},
		{`\B`, `\B`},
		{`\A`, `\A`},
		{`\Z`, `\Z`},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			flags, ir := compileDSL(t, tc.input)
			if got := Emit(ir, flags); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// TestShorthandClassEmit covers the bracket-free shorthand optimization and
// negation-flipping for single-item classes (\d/\D, \w/\W, \s/\S, \p/\P).
func TestShorthandClassEmit(t *testing.T) {
	tests := []struct{ input, expected string }{
		{`\d`, `\d`},
		{`[^\d]`, `\D`},
		{`\D`, `\D`},
		{`[^\D]`, `\d`},
		{`\w`, `\w`},
		{`\s`, `\s`},
		{`\p{L}`, `\p{L}`},
		{`\P{L}`, `\P{L}`},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			flags, ir := compileDSL(t, tc.input)
			if got := Emit(ir, flags); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// TestQuantifierGrouping covers when a quantified child needs a
// non-capturing group wrapper to be syntactically safe.
func TestQuantifierGrouping(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"a*", "a*"},
		{"(?:ab)*", "(?:ab)*"},
		{"(?=a)+", "(?:(?=a))+"},
		{"a+?", "a+?"},
		{"a++", "a++"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			flags, ir := compileDSL(t, tc.input)
			if got := Emit(ir, flags); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// TestFlagPrefixEmit covers the fixed i,m,s,x letter order and the
// deliberate absence of a "u" letter (PCRE2 has no single-letter inline
// unicode modifier).
func TestFlagPrefixEmit(t *testing.T) {
	flags, ir := compileDSL(t, "%flags xmsiu\na")
	got := Emit(ir, flags)
	want := "(?imsx)a"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestGroupEmit covers named, atomic, and plain capturing group syntax.
func TestGroupEmit(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"(a)", "(a)"},
		{"(?:a)", "(?:a)"},
		{"(?>a)", "(?>a)"},
		{"(?<n>a)", "(?<n>a)"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			flags, ir := compileDSL(t, tc.input)
			if got := Emit(ir, flags); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// TestLiteralEscaping covers metacharacter escaping and extended-mode space
// escaping.
func TestLiteralEscaping(t *testing.T) {
	flags, ir := compileDSL(t, `a\.b`)
	if got := Emit(ir, flags); got != `a\.b` {
		t.Errorf("expected %q, got %q", `a\.b`, got)
	}

	flags, ir = compileDSL(t, "%flags x\na\\ b")
	if got := Emit(ir, flags); got != `(?x)a\ b` {
		t.Errorf("expected %q, got %q", `(?x)a\ b`, got)
	}
}
