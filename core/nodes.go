// Package core contains the fundamental data structures and types for the
// STRling compiler: AST nodes, IR nodes, diagnostics, the parser, and the
// compiler.
package core

// Node is the base interface for all AST nodes. All AST node types must
// implement ToDict, a debug serialization to a plain map.
//
// AST and IR share the same variant set (see ir.go); compilation is a
// validating, mostly 1:1 lowering between them.
type Node interface {
	ToDict() map[string]interface{}
}

// Alt represents alternation (a|b|c). Branches has length >= 2; a single
// branch collapses to that branch at parse time, and Alt is flattened so no
// direct child of Alt is itself an Alt.
type Alt struct {
	Branches []Node
}

func (a Alt) ToDict() map[string]interface{} {
	branches := make([]interface{}, len(a.Branches))
	for i, b := range a.Branches {
		branches[i] = b.ToDict()
	}
	return map[string]interface{}{"kind": "Alt", "branches": branches}
}

// Seq represents a sequence of parts matched in order. A Seq of length 1
// collapses to its single element at parse time; a Seq of length 0 (empty
// pattern body) is preserved as-is.
type Seq struct {
	Parts []Node
}

func (s Seq) ToDict() map[string]interface{} {
	parts := make([]interface{}, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p.ToDict()
	}
	return map[string]interface{}{"kind": "Seq", "parts": parts}
}

// Lit represents a literal run of one or more UTF-8 characters matched
// verbatim.
type Lit struct {
	Value string
}

func (l Lit) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Lit", "value": l.Value}
}

// Dot matches any character, subject to the dotAll flag.
type Dot struct{}

func (d Dot) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Dot"}
}

// Anchor kinds, per spec.md §3.2. There is no "absolute end" kind: \z is not
// a recognized anchor escape in this DSL (spec.md §4.2.6 lists only
// \b \B \A \Z) and falls through to the identity-escape rule instead.
const (
	AnchorStart                 = "Start"
	AnchorEnd                   = "End"
	AnchorAbsoluteStart         = "AbsoluteStart"
	AnchorEndBeforeFinalNewline = "EndBeforeFinalNewline"
	AnchorWordBoundary          = "WordBoundary"
	AnchorNotWordBoundary       = "NotWordBoundary"
)

// Anchor is a zero-width position assertion.
type Anchor struct {
	At string
}

func (a Anchor) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Anchor", "at": a.At}
}

// ClassItem is the base interface for items inside a CharClass.
type ClassItem interface {
	ToDict() map[string]interface{}
}

// ClassLiteral is a single literal character inside a character class.
type ClassLiteral struct {
	Ch string
}

func (cl ClassLiteral) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Char", "char": cl.Ch}
}

// ClassRange is an inclusive character range [from-to] inside a character
// class. The AST invariant codepoint(from) <= codepoint(to) is enforced by
// the parser when the range is built and re-checked by the compiler.
type ClassRange struct {
	FromCh string
	ToCh   string
}

func (cr ClassRange) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Range", "from": cr.FromCh, "to": cr.ToCh}
}

// ClassEscape covers both shorthand classes (d, D, w, W, s, S) and Unicode
// property escapes (p, P): Type holds the kind letter, Property is non-nil
// only for p/P.
type ClassEscape struct {
	Type     string
	Property *string
}

func (ce ClassEscape) ToDict() map[string]interface{} {
	d := map[string]interface{}{"kind": "Esc", "type": ce.Type}
	if (ce.Type == "p" || ce.Type == "P") && ce.Property != nil {
		d["property"] = *ce.Property
	}
	return d
}

// CharClass is a (possibly negated) ordered sequence of class items.
type CharClass struct {
	Negated bool
	Items   []ClassItem
}

func (cc CharClass) ToDict() map[string]interface{} {
	items := make([]interface{}, len(cc.Items))
	for i, it := range cc.Items {
		items[i] = it.ToDict()
	}
	return map[string]interface{}{"kind": "CharClass", "negated": cc.Negated, "items": items}
}

// Quantifier modes.
const (
	ModeGreedy     = "Greedy"
	ModeLazy       = "Lazy"
	ModePossessive = "Possessive"
)

// Inf is the sentinel stored in Quant.Max (and IRQuant.Max) for an
// unbounded upper quantifier bound.
const Inf = "Inf"

// Quant is a quantifier applied to Child. Min <= Max when Max is an int; Max
// may instead be the Inf sentinel. Child must not be an Anchor — the parser
// rejects that, and the compiler rejects it again for trees built without
// the parser.
type Quant struct {
	Child Node
	Min   int
	// Max is either an int or the Inf sentinel string.
	Max  interface{}
	Mode string
}

func (q Quant) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"kind": "Quant", "child": q.Child.ToDict(), "min": q.Min, "max": q.Max, "mode": q.Mode,
	}
}

// Group is a capturing, non-capturing, atomic, or named group. A
// non-capturing group must not carry a Name; a named group is always
// Capturing; Atomic implies !Capturing.
type Group struct {
	Capturing bool
	Atomic    bool
	Name      *string
	Body      Node
}

func (g Group) ToDict() map[string]interface{} {
	d := map[string]interface{}{"kind": "Group", "capturing": g.Capturing, "atomic": g.Atomic, "body": g.Body.ToDict()}
	if g.Name != nil {
		d["name"] = *g.Name
	}
	return d
}

// Backref is a backreference by numbered index (>=1) xor by capture name.
type Backref struct {
	ByIndex *int
	ByName  *string
}

func (b Backref) ToDict() map[string]interface{} {
	d := map[string]interface{}{"kind": "Backref"}
	if b.ByIndex != nil {
		d["byIndex"] = *b.ByIndex
	}
	if b.ByName != nil {
		d["byName"] = *b.ByName
	}
	return d
}

// Look directions.
const (
	DirAhead  = "Ahead"
	DirBehind = "Behind"
)

// Look is a zero-width lookaround assertion.
type Look struct {
	Dir  string
	Neg  bool
	Body Node
}

func (l Look) ToDict() map[string]interface{} {
	return map[string]interface{}{"kind": "Look", "dir": l.Dir, "neg": l.Neg, "body": l.Body.ToDict()}
}
