// Package simply is a small, secondary fluent builder for common STRling
// AST shapes, for callers that want to construct a pattern in Go without
// writing DSL text. It is not part of the language pipeline (spec.md §1
// lists "any secondary Simply builder API" as an external collaborator,
// out of the core's scope) and performs none of the Parser's validation —
// a tree built here still has to pass through core.Compile to be checked.
package simply

import "github.com/thecyberlocal/strling/core"

// Start is the `^` anchor.
func Start() core.Node {
	return core.Anchor{At: core.AnchorStart}
}

// End is the `$` anchor.
func End() core.Node {
	return core.Anchor{At: core.AnchorEnd}
}

// Lit creates a literal node.
func Lit(s string) core.Node {
	return core.Lit{Value: s}
}

// Digit returns a character class matching a single digit (\d).
func Digit() core.Node {
	return core.CharClass{Items: []core.ClassItem{core.ClassEscape{Type: "d"}}}
}

// Word returns a character class matching a word character (\w).
func Word() core.Node {
	return core.CharClass{Items: []core.ClassItem{core.ClassEscape{Type: "w"}}}
}

// CharClassFromLiterals builds a character class out of single characters.
// Multi-byte entries are kept whole (one ClassLiteral per provided string).
func CharClassFromLiterals(chars ...string) core.Node {
	items := make([]core.ClassItem, 0, len(chars))
	for _, c := range chars {
		items = append(items, core.ClassLiteral{Ch: c})
	}
	return core.CharClass{Items: items}
}

// Seq builds a sequence node from the given children.
func Seq(parts ...core.Node) core.Node {
	return core.Seq{Parts: parts}
}

// Alt builds an alternation node from the given branches.
func Alt(branches ...core.Node) core.Node {
	return core.Alt{Branches: branches}
}

// GroupCapture wraps a node in an unnamed capturing group.
func GroupCapture(body core.Node) core.Node {
	return core.Group{Capturing: true, Body: body}
}

// GroupNamed wraps a node in a named capturing group.
func GroupNamed(name string, body core.Node) core.Node {
	return core.Group{Capturing: true, Name: &name, Body: body}
}

// Quant creates a greedy {min,max} quantifier over target.
func Quant(target core.Node, min, max int) core.Node {
	return core.Quant{Child: target, Min: min, Max: max, Mode: core.ModeGreedy}
}

// QuantUnbounded creates a greedy {min,∞} quantifier over target.
func QuantUnbounded(target core.Node, min int) core.Node {
	return core.Quant{Child: target, Min: min, Max: core.Inf, Mode: core.ModeGreedy}
}
