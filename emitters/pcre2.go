// Package emitters contains code generators that transform IR to target regex flavors.
package emitters

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thecyberlocal/strling/core"
)

// STRling PCRE2 Emitter - IR to PCRE2 Pattern String
//
// Transforms STRling's IR into PCRE2-compatible regex pattern strings
// (spec.md §4.4): escapes metacharacters, serializes each IR variant with
// its dialect-correct syntax, and prepends an inline flag prefix. Emit is
// total: a well-formed IR never fails to produce a string.

// escapeLiteral escapes PCRE2 metacharacters and control characters in a
// Literal value (spec.md §4.4.2). In extended mode, a literal space must
// also be escaped so it isn't swallowed by free-spacing tokenization on
// re-parse.
func escapeLiteral(s string, extended bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case strings.ContainsRune(`\.^$|()[]{}*+?`, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\v':
			b.WriteString(`\v`)
		case r == ' ' && extended:
			b.WriteString(`\ `)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeClassChar escapes a character for use inside [...] per PCRE2 rules.
// Inside [], ], \, -, and ^ are special and need escaping for safety.
func escapeClassChar(ch string) string {
	if len(ch) == 0 {
		return ""
	}

	r, _ := utf8.DecodeRuneInString(ch)

	if r == '\\' || r == ']' {
		return "\\" + ch
	}
	if r == '-' {
		return "\\-"
	}
	if r == '^' {
		return "\\^"
	}

	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	}

	if r < 32 || !strconv.IsPrint(r) {
		return fmt.Sprintf("\\x%02x", r)
	}

	return ch
}

// emitClass emits a PCRE2 character class. If the class is exactly one
// shorthand or Unicode-property escape, the bracket-free shorthand is
// preferred (with negation flipping) over a one-item bracketed class.
func emitClass(cc core.IRCharClass) string {
	items := cc.Items

	if len(items) == 1 {
		if esc, ok := items[0].(core.IRClassEscape); ok {
			k := esc.Type
			prop := esc.Property

			switch k {
			case "d", "w", "s":
				if cc.Negated {
					return "\\" + strings.ToUpper(k)
				}
				return "\\" + k
			case "D", "W", "S":
				if cc.Negated {
					return "\\" + strings.ToLower(k)
				}
				return "\\" + k
			case "p", "P":
				if prop != nil {
					use := "p"
					if cc.Negated != (k == "P") { // XOR
						use = "P"
					}
					return fmt.Sprintf("\\%s{%s}", use, *prop)
				}
			}
		}
	}

	var parts []string
	for _, it := range items {
		switch item := it.(type) {
		case core.IRClassLiteral:
			parts = append(parts, escapeClassChar(item.Ch))
		case core.IRClassRange:
			parts = append(parts, fmt.Sprintf("%s-%s", escapeClassChar(item.FromCh), escapeClassChar(item.ToCh)))
		case core.IRClassEscape:
			if item.Type == "p" || item.Type == "P" {
				if item.Property != nil {
					parts = append(parts, fmt.Sprintf("\\%s{%s}", item.Type, *item.Property))
					continue
				}
			}
			parts = append(parts, "\\"+item.Type)
		}
	}

	inner := strings.Join(parts, "")
	negPrefix := ""
	if cc.Negated {
		negPrefix = "^"
	}
	return fmt.Sprintf("[%s%s]", negPrefix, inner)
}

// emitQuantSuffix emits *, +, ?, {m}, {m,}, {m,n} plus an optional
// lazy/possessive suffix, folding the {0,∞}/{1,∞}/{0,1} shorthands
// (spec.md §4.4.2).
func emitQuantSuffix(minV interface{}, maxV interface{}, mode string) string {
	min, _ := minV.(int)

	maxIsInf := false
	maxInt := 0
	if maxStr, ok := maxV.(string); ok && maxStr == core.Inf {
		maxIsInf = true
	} else if maxI, ok := maxV.(int); ok {
		maxInt = maxI
	}

	var q string
	switch {
	case min == 0 && maxIsInf:
		q = "*"
	case min == 1 && maxIsInf:
		q = "+"
	case min == 0 && maxInt == 1:
		q = "?"
	case !maxIsInf && min == maxInt:
		q = fmt.Sprintf("{%d}", min)
	case maxIsInf:
		q = fmt.Sprintf("{%d,}", min)
	default:
		q = fmt.Sprintf("{%d,%d}", min, maxInt)
	}

	switch mode {
	case core.ModeLazy:
		q += "?"
	case core.ModePossessive:
		q += "+"
	}
	return q
}

// needsGroupForQuant reports whether child needs a non-capturing group
// wrapper to be safely quantified.
func needsGroupForQuant(child core.IROp) bool {
	switch c := child.(type) {
	case core.IRCharClass, core.IRDot, core.IRGroup, core.IRBackref, core.IRAnchor:
		return false
	case core.IRLit:
		return utf8.RuneCountInString(c.Value) > 1
	case core.IRAlt, core.IRLook:
		return true
	case core.IRSeq:
		return len(c.Parts) > 1
	}
	return false
}

// emitGroupOpen emits the opening syntax for a group.
func emitGroupOpen(g core.IRGroup) string {
	if g.Atomic {
		return "(?>"
	}
	if g.Capturing {
		if g.Name != nil {
			return fmt.Sprintf("(?<%s>", *g.Name)
		}
		return "("
	}
	return "(?:"
}

// anchorTokens maps an IRAnchor.At kind to its PCRE2 token (spec.md §4.4.2).
var anchorTokens = map[string]string{
	core.AnchorStart:                 "^",
	core.AnchorEnd:                   "$",
	core.AnchorAbsoluteStart:         `\A`,
	core.AnchorEndBeforeFinalNewline: `\Z`,
	core.AnchorWordBoundary:          `\b`,
	core.AnchorNotWordBoundary:       `\B`,
}

// emitNode emits a PCRE2 pattern fragment from an IR node. parentKind
// disambiguates whether an Alt needs grouping; extended controls whether
// literal spaces must be escaped.
func emitNode(node core.IROp, parentKind string, extended bool) string {
	switch n := node.(type) {
	case core.IRLit:
		return escapeLiteral(n.Value, extended)

	case core.IRDot:
		return "."

	case core.IRAnchor:
		return anchorTokens[n.At]

	case core.IRBackref:
		if n.ByName != nil {
			return fmt.Sprintf(`\k<%s>`, *n.ByName)
		}
		if n.ByIndex != nil {
			return fmt.Sprintf(`\%d`, *n.ByIndex)
		}
		return ""

	case core.IRCharClass:
		return emitClass(n)

	case core.IRSeq:
		var parts []string
		for _, p := range n.Parts {
			parts = append(parts, emitNode(p, "Seq", extended))
		}
		return strings.Join(parts, "")

	case core.IRAlt:
		var branches []string
		for _, b := range n.Branches {
			branches = append(branches, emitNode(b, "Alt", extended))
		}
		body := strings.Join(branches, "|")
		if parentKind == "Seq" || parentKind == "Quant" {
			return "(?:" + body + ")"
		}
		return body

	case core.IRQuant:
		childStr := emitNode(n.Child, "Quant", extended)
		if needsGroupForQuant(n.Child) {
			childStr = "(?:" + childStr + ")"
		}
		return childStr + emitQuantSuffix(n.Min, n.Max, n.Mode)

	case core.IRGroup:
		return emitGroupOpen(n) + emitNode(n.Body, "Group", extended) + ")"

	case core.IRLook:
		var op string
		switch {
		case n.Dir == core.DirAhead && !n.Neg:
			op = "?="
		case n.Dir == core.DirAhead && n.Neg:
			op = "?!"
		case n.Dir == core.DirBehind && !n.Neg:
			op = "?<="
		default:
			op = "?<!"
		}
		return "(" + op + emitNode(n.Body, "Look", extended) + ")"
	}

	return ""
}

// emitPrefix builds the inline flag prefix, e.g. "(?imsx)" (spec.md §4.4.1).
// PCRE2's own unicode handling is not a single inline-prefix letter, so
// Flags.Unicode contributes nothing here — it's meaningful input to whatever
// engine compiles the emitted string (e.g. via PCRE2_UCP), not to this
// string itself.
func emitPrefix(flags core.Flags) string {
	var letters strings.Builder
	if flags.IgnoreCase {
		letters.WriteByte('i')
	}
	if flags.Multiline {
		letters.WriteByte('m')
	}
	if flags.DotAll {
		letters.WriteByte('s')
	}
	if flags.Extended {
		letters.WriteByte('x')
	}
	if letters.Len() == 0 {
		return ""
	}
	return "(?" + letters.String() + ")"
}

// Emit produces a PCRE2 pattern string from IR and Flags (spec.md §6.2).
// Emit is total: a well-formed IR never fails to produce a string.
func Emit(irRoot core.IROp, flags core.Flags) string {
	return emitPrefix(flags) + emitNode(irRoot, "", flags.Extended)
}
