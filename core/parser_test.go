package core

import "testing"

// TestFlagsDirective covers %flags parsing: the directive consumes the
// whole line it appears on, unknown letters are ignored rather than
// rejected, and a pattern with no directive gets zero-value Flags.
func TestFlagsDirective(t *testing.T) {
	t.Run("sets flags from known letters", func(t *testing.T) {
		flags, _, err := Parse("%flags im\nfoo")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if !flags.IgnoreCase || !flags.Multiline {
			t.Errorf("expected IgnoreCase and Multiline set, got %+v", flags)
		}
		if flags.DotAll || flags.Extended {
			t.Errorf("expected DotAll/Extended unset, got %+v", flags)
		}
	})

	t.Run("unknown letters are ignored, not rejected", func(t *testing.T) {
		_, _, err := Parse("%flags iqz\nfoo")
		if err != nil {
			t.Fatalf("expected no error for unknown flag letters, got %v", err)
		}
	})

	t.Run("consumes the whole directive line including trailing garbage", func(t *testing.T) {
		_, ast, err := Parse("%flags x ### whatever\nab")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		seq, ok := ast.(Seq)
		if !ok || len(seq.Parts) != 2 {
			t.Fatalf("expected a 2-part Seq from the body after the directive line, got %#v", ast)
		}
	})

	t.Run("no directive leaves flags zero-valued", func(t *testing.T) {
		flags, _, err := Parse("abc")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if flags != (Flags{}) {
			t.Errorf("expected zero-value Flags, got %+v", flags)
		}
	})
}

// TestQuantifierParsing covers *, +, ?, {m,n} and the `{`-backtrack rule.
func TestQuantifierParsing(t *testing.T) {
	t.Run("star/plus/question map to 0/1/inf bounds", func(t *testing.T) {
		cases := []struct {
			in       string
			min      int
			max      interface{}
		}{
			{"a*", 0, Inf},
			{"a+", 1, Inf},
			{"a?", 0, 1},
		}
		for _, tc := range cases {
			_, ast, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			q, ok := ast.(Quant)
			if !ok {
				t.Fatalf("Parse(%q): expected Quant, got %T", tc.in, ast)
			}
			if q.Min != tc.min || q.Max != tc.max {
				t.Errorf("Parse(%q): expected min=%v max=%v, got min=%v max=%v", tc.in, tc.min, tc.max, q.Min, q.Max)
			}
		}
	})

	t.Run("braced forms", func(t *testing.T) {
		_, ast, err := Parse("a{2,5}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		q := ast.(Quant)
		if q.Min != 2 || q.Max != 5 {
			t.Errorf("expected {2,5}, got min=%v max=%v", q.Min, q.Max)
		}
	})

	t.Run("an unmatched { at the very start of a sequence is an error", func(t *testing.T) {
		_, _, err := Parse("{3}")
		if err == nil {
			t.Fatalf("expected an error for a leading {, got none")
		}
	})

	t.Run("a { that fails to form a quantifier after a real atom backtracks to a literal", func(t *testing.T) {
		_, ast, err := Parse("a{z}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		seq, ok := ast.(Seq)
		if !ok {
			t.Fatalf("expected Seq, got %T", ast)
		}
		want := []string{"a", "{", "z", "}"}
		if len(seq.Parts) != len(want) {
			t.Fatalf("expected %d literal parts, got %d: %#v", len(want), len(seq.Parts), seq.Parts)
		}
		for i, w := range want {
			lit, ok := seq.Parts[i].(Lit)
			if !ok || lit.Value != w {
				t.Errorf("part %d: expected Lit(%q), got %#v", i, w, seq.Parts[i])
			}
		}
	})

	t.Run("quantifying an anchor is a semantic error", func(t *testing.T) {
		_, _, err := Parse("^*")
		if err == nil {
			t.Fatalf("expected an error quantifying an anchor")
		}
		d := err.(*Diagnostic)
		if d.Kind != KindSemantics {
			t.Errorf("expected KindSemantics, got %v", d.Kind)
		}
	})
}

// TestGroupParsing covers the fixed-order group/lookaround prefix table.
func TestGroupParsing(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want func(Node) bool
	}{
		{"non-capturing", "(?:a)", func(n Node) bool { g, ok := n.(Group); return ok && !g.Capturing && !g.Atomic }},
		{"atomic", "(?>a)", func(n Node) bool { g, ok := n.(Group); return ok && g.Atomic }},
		{"lookahead positive", "(?=a)", func(n Node) bool { l, ok := n.(Look); return ok && l.Dir == DirAhead && !l.Neg }},
		{"lookahead negative", "(?!a)", func(n Node) bool { l, ok := n.(Look); return ok && l.Dir == DirAhead && l.Neg }},
		{"lookbehind positive", "(?<=a)", func(n Node) bool { l, ok := n.(Look); return ok && l.Dir == DirBehind && !l.Neg }},
		{"lookbehind negative", "(?<!a)", func(n Node) bool { l, ok := n.(Look); return ok && l.Dir == DirBehind && l.Neg }},
		{"named capturing", "(?<n>a)", func(n Node) bool { g, ok := n.(Group); return ok && g.Capturing && g.Name != nil && *g.Name == "n" }},
		{"plain capturing", "(a)", func(n Node) bool { g, ok := n.(Group); return ok && g.Capturing && g.Name == nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ast, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			if !tc.want(ast) {
				t.Errorf("Parse(%q): unexpected node shape %#v", tc.in, ast)
			}
		})
	}

	t.Run("duplicate group name is a semantic error", func(t *testing.T) {
		_, _, err := Parse("(?<n>a)(?<n>b)")
		if err == nil {
			t.Fatalf("expected duplicate group name error")
		}
	})

	t.Run("nesting past the depth limit is a bound error", func(t *testing.T) {
		var sb []byte
		for i := 0; i < maxNestingDepth+5; i++ {
			sb = append(sb, '(')
		}
		_, _, err := Parse(string(sb))
		if err == nil {
			t.Fatalf("expected nesting depth error")
		}
		d := err.(*Diagnostic)
		if d.Kind != KindBound {
			t.Errorf("expected KindBound, got %v", d.Kind)
		}
	})
}

// TestBackrefParsing covers numbered and named backreferences.
func TestBackrefParsing(t *testing.T) {
	t.Run("numbered backref resolves against prior capture count", func(t *testing.T) {
		_, ast, err := Parse(`(a)\1`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		seq := ast.(Seq)
		ref, ok := seq.Parts[1].(Backref)
		if !ok || ref.ByIndex == nil || *ref.ByIndex != 1 {
			t.Errorf("expected Backref{ByIndex: 1}, got %#v", seq.Parts[1])
		}
	})

	t.Run("backref to an undeclared group is a semantic error", func(t *testing.T) {
		_, _, err := Parse(`\1`)
		if err == nil {
			t.Fatalf("expected undefined-group error")
		}
	})

	t.Run("named backref resolves against declared names", func(t *testing.T) {
		_, ast, err := Parse(`(?<n>a)\k<n>`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		seq := ast.(Seq)
		ref, ok := seq.Parts[1].(Backref)
		if !ok || ref.ByName == nil || *ref.ByName != "n" {
			t.Errorf("expected Backref{ByName: \"n\"}, got %#v", seq.Parts[1])
		}
	})

	t.Run("named backref to an undeclared name is a semantic error", func(t *testing.T) {
		_, _, err := Parse(`\k<missing>`)
		if err == nil {
			t.Fatalf("expected undefined-group error")
		}
	})

	t.Run("numbered backref may self-reference its own enclosing group", func(t *testing.T) {
		if _, _, err := Parse(`(a\1)`); err != nil {
			t.Fatalf("Parse error: %v", err)
		}
	})

	t.Run("named backref may self-reference its own enclosing group", func(t *testing.T) {
		if _, _, err := Parse(`(?<n>a\k<n>)`); err != nil {
			t.Fatalf("Parse error: %v", err)
		}
	})
}

// TestCharClassParsing covers ranges, negation, and escapes inside [...].
func TestCharClassParsing(t *testing.T) {
	t.Run("negated class", func(t *testing.T) {
		_, ast, err := Parse("[^a-z]")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		cc, ok := ast.(CharClass)
		if !ok || !cc.Negated {
			t.Fatalf("expected negated CharClass, got %#v", ast)
		}
		r, ok := cc.Items[0].(ClassRange)
		if !ok || r.FromCh != "a" || r.ToCh != "z" {
			t.Errorf("expected range a-z, got %#v", cc.Items[0])
		}
	})

	t.Run("backwards range is a semantic error", func(t *testing.T) {
		_, _, err := Parse("[z-a]")
		if err == nil {
			t.Fatalf("expected invalid range error")
		}
	})

	t.Run("\\b inside a class means backspace, not word boundary", func(t *testing.T) {
		_, ast, err := Parse(`[\b]`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		cc := ast.(CharClass)
		lit, ok := cc.Items[0].(ClassLiteral)
		if !ok || lit.Ch != "\b" {
			t.Errorf("expected backspace literal, got %#v", cc.Items[0])
		}
	})
}

// TestHexEscapes covers \x, \x{...}, \u, \u{...} and the UTF-8-encoding fix
// for codepoints at or above 128 (a REDESIGN FLAG correction of the
// C original's truncate-to-'?' behavior).
func TestHexEscapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"two-digit hex below 128", `\x41`, "A"},
		{"braced hex codepoint above 128 encodes the full rune", `\x{1F600}`, "\U0001F600"},
		{"four-digit unicode escape", "\\u00e9", "\u00e9"},
		{"braced unicode escape", `\u{1F600}`, "\U0001F600"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ast, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			lit, ok := ast.(Lit)
			if !ok {
				t.Fatalf("Parse(%q): expected Lit, got %T", tc.in, ast)
			}
			if lit.Value != tc.want {
				t.Errorf("Parse(%q): expected %q, got %q", tc.in, tc.want, lit.Value)
			}
		})
	}
}

// TestAlternationParsing covers empty-branch diagnostics.
func TestAlternationParsing(t *testing.T) {
	t.Run("missing left-hand side", func(t *testing.T) {
		_, _, err := Parse("|a")
		if err == nil {
			t.Fatalf("expected an error for a leading |")
		}
	})

	t.Run("missing right-hand side", func(t *testing.T) {
		_, _, err := Parse("a|")
		if err == nil {
			t.Fatalf("expected an error for a trailing |")
		}
	})

	t.Run("well-formed alternation", func(t *testing.T) {
		_, ast, err := Parse("a|b|c")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		alt, ok := ast.(Alt)
		if !ok || len(alt.Branches) != 3 {
			t.Fatalf("expected a 3-branch Alt, got %#v", ast)
		}
	})
}

// TestTrailingInput covers the unmatched-')' trailing-input diagnostic and
// the empty-pattern boundary.
func TestTrailingInput(t *testing.T) {
	t.Run("unmatched close paren", func(t *testing.T) {
		_, _, err := Parse("a)")
		if err == nil {
			t.Fatalf("expected Unmatched ')' error")
		}
	})

	t.Run("empty pattern parses to an empty Seq", func(t *testing.T) {
		_, ast, err := Parse("")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if !isEmptySeq(ast) {
			t.Errorf("expected empty Seq, got %#v", ast)
		}
	})
}
