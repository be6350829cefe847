package core

// STRling Compiler - AST to IR Transformation
//
// The compiler is primarily a validating structural copy from AST to IR
// (spec.md §4.3): every AST variant maps to the identically named IR
// variant. It additionally validates quantifier bounds, resolves
// backreferences against the AST's final capture table (recomputed here
// rather than trusted from the parser, since an AST reaching Compile may
// have been built directly — e.g. from a JSON conformance fixture — without
// ever passing through Parse), and performs the few normalizations spec.md
// calls out: sequence collapsing, alternation flattening, and wrapping a
// quantified lookaround in a non-capturing group.

// Compiler transforms AST nodes into IR, tracking which optional dialect
// features the input pattern exercises.
type Compiler struct {
	featuresUsed map[string]bool
}

// NewCompiler creates a new Compiler instance.
func NewCompiler() *Compiler {
	return &Compiler{featuresUsed: make(map[string]bool)}
}

// Compile lowers an AST to IR, or returns the first diagnostic encountered.
func Compile(root Node) (IROp, error) {
	c := NewCompiler()
	count, names := c.collectCaptures(root)
	ir, derr := c.lower(root, count, names)
	if derr != nil {
		return nil, derr
	}
	ir = c.normalize(ir)
	c.analyzeFeatures(ir)
	return ir, nil
}

// Compile is a convenience method so *Compiler also satisfies a
// struct-based calling style; it runs the same steps as the package-level
// Compile and records the features of root for FeaturesUsed.
func (c *Compiler) Compile(root Node) (IROp, error) {
	c.featuresUsed = make(map[string]bool)
	count, names := c.collectCaptures(root)
	ir, derr := c.lower(root, count, names)
	if derr != nil {
		return nil, derr
	}
	ir = c.normalize(ir)
	c.analyzeFeatures(ir)
	return ir, nil
}

// FeaturesUsed returns the dialect features the most recently compiled IR
// exercises (e.g. "lookbehind", "possessive_quantifier"), for CLI/debug use.
func (c *Compiler) FeaturesUsed() []string {
	features := make([]string, 0, len(c.featuresUsed))
	for f := range c.featuresUsed {
		features = append(features, f)
	}
	return features
}

// collectCaptures walks the full AST once to build the capture table that
// backreference resolution validates against (spec.md §3.2 invariant on
// BackRef, §4.3 "Backreference resolution").
func (c *Compiler) collectCaptures(node Node) (int, map[string]bool) {
	count := 0
	names := make(map[string]bool)
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Group:
			if v.Capturing {
				count++
				if v.Name != nil {
					names[*v.Name] = true
				}
			}
			walk(v.Body)
		case Alt:
			for _, b := range v.Branches {
				walk(b)
			}
		case Seq:
			for _, p := range v.Parts {
				walk(p)
			}
		case Quant:
			walk(v.Child)
		case Look:
			walk(v.Body)
		}
	}
	walk(node)
	return count, names
}

// lower converts AST nodes to IR, validating as it goes.
func (c *Compiler) lower(node Node, capCount int, capNames map[string]bool) (IROp, *Diagnostic) {
	switch n := node.(type) {
	case Alt:
		branches := make([]IROp, len(n.Branches))
		for i, b := range n.Branches {
			ir, derr := c.lower(b, capCount, capNames)
			if derr != nil {
				return nil, derr
			}
			branches[i] = ir
		}
		return IRAlt{Branches: branches}, nil

	case Seq:
		parts := make([]IROp, len(n.Parts))
		for i, p := range n.Parts {
			ir, derr := c.lower(p, capCount, capNames)
			if derr != nil {
				return nil, derr
			}
			parts[i] = ir
		}
		return IRSeq{Parts: parts}, nil

	case Lit:
		return IRLit{Value: n.Value}, nil

	case Dot:
		return IRDot{}, nil

	case Anchor:
		return IRAnchor{At: n.At}, nil

	case CharClass:
		items := make([]IRClassItem, len(n.Items))
		for i, item := range n.Items {
			ir, derr := c.lowerClassItem(item)
			if derr != nil {
				return nil, derr
			}
			items[i] = ir
		}
		return IRCharClass{Negated: n.Negated, Items: items}, nil

	case Quant:
		if _, isAnchor := n.Child.(Anchor); isAnchor {
			return nil, &Diagnostic{Message: "Cannot quantify anchor", Kind: KindSemantics, Hint: hint("Cannot quantify anchor")}
		}
		if n.Min < 0 {
			return nil, &Diagnostic{Message: "Quantifier min must be non-negative", Kind: KindBound}
		}
		if maxInt, ok := n.Max.(int); ok && maxInt < n.Min {
			return nil, &Diagnostic{Message: "Quantifier min exceeds max", Kind: KindBound}
		}
		child, derr := c.lower(n.Child, capCount, capNames)
		if derr != nil {
			return nil, derr
		}
		ir := IRQuant{Child: child, Min: n.Min, Max: n.Max, Mode: n.Mode}
		// Quantified lookaround: wrap the Look in a non-capturing Group so
		// the emitter produces e.g. `(?:(?=...))+` rather than a malformed
		// `(?=...)+ ` (spec.md §4.3 "Quantified lookaround").
		if _, isLook := child.(IRLook); isLook {
			ir.Child = IRGroup{Capturing: false, Body: child}
		}
		return ir, nil

	case Group:
		body, derr := c.lower(n.Body, capCount, capNames)
		if derr != nil {
			return nil, derr
		}
		return IRGroup{Capturing: n.Capturing, Atomic: n.Atomic, Name: n.Name, Body: body}, nil

	case Backref:
		if n.ByIndex != nil {
			if *n.ByIndex < 1 || *n.ByIndex > capCount {
				return nil, &Diagnostic{Message: "Backreference to undefined group", Kind: KindSemantics, Hint: hint("Backreference to undefined group")}
			}
		}
		if n.ByName != nil && !capNames[*n.ByName] {
			return nil, &Diagnostic{Message: "Backreference to undefined group", Kind: KindSemantics, Hint: hint("Backreference to undefined group")}
		}
		return IRBackref{ByIndex: n.ByIndex, ByName: n.ByName}, nil

	case Look:
		body, derr := c.lower(n.Body, capCount, capNames)
		if derr != nil {
			return nil, derr
		}
		return IRLook{Dir: n.Dir, Neg: n.Neg, Body: body}, nil

	default:
		return IRSeq{Parts: []IROp{}}, nil
	}
}

func (c *Compiler) lowerClassItem(item ClassItem) (IRClassItem, *Diagnostic) {
	switch i := item.(type) {
	case ClassLiteral:
		return IRClassLiteral{Ch: i.Ch}, nil
	case ClassRange:
		fromR := []rune(i.FromCh)
		toR := []rune(i.ToCh)
		if len(fromR) > 0 && len(toR) > 0 && fromR[0] > toR[0] {
			return nil, &Diagnostic{Message: "Invalid character range", Kind: KindSemantics, Hint: hint("Invalid character range")}
		}
		return IRClassRange{FromCh: i.FromCh, ToCh: i.ToCh}, nil
	case ClassEscape:
		return IRClassEscape{Type: i.Type, Property: i.Property}, nil
	default:
		return IRClassLiteral{Ch: ""}, nil
	}
}

// normalize performs the few IR-level rewrites spec.md §4.3 calls out:
// sequence collapsing and alternation flattening. Empty-range folding
// ({m,∞} with m=0 becoming `*`) is left to the emitter, as the spec permits.
func (c *Compiler) normalize(node IROp) IROp {
	switch n := node.(type) {
	case IRSeq:
		parts := make([]IROp, len(n.Parts))
		for i, p := range n.Parts {
			parts[i] = c.normalize(p)
		}

		flattened := make([]IROp, 0, len(parts))
		for _, part := range parts {
			if seq, ok := part.(IRSeq); ok {
				flattened = append(flattened, seq.Parts...)
			} else {
				flattened = append(flattened, part)
			}
		}

		if len(flattened) == 1 {
			return flattened[0]
		}
		return IRSeq{Parts: flattened}

	case IRAlt:
		branches := make([]IROp, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = c.normalize(b)
		}

		flattened := make([]IROp, 0, len(branches))
		for _, branch := range branches {
			if alt, ok := branch.(IRAlt); ok {
				flattened = append(flattened, alt.Branches...)
			} else {
				flattened = append(flattened, branch)
			}
		}

		if len(flattened) == 1 {
			return flattened[0]
		}
		return IRAlt{Branches: flattened}

	case IRQuant:
		return IRQuant{Child: c.normalize(n.Child), Min: n.Min, Max: n.Max, Mode: n.Mode}

	case IRGroup:
		return IRGroup{Capturing: n.Capturing, Atomic: n.Atomic, Name: n.Name, Body: c.normalize(n.Body)}

	case IRLook:
		return IRLook{Dir: n.Dir, Neg: n.Neg, Body: c.normalize(n.Body)}

	default:
		return node
	}
}

// analyzeFeatures walks the final IR tree recording which optional dialect
// features the pattern exercises, for CLI/debug reporting.
func (c *Compiler) analyzeFeatures(node IROp) {
	switch n := node.(type) {
	case IRGroup:
		if n.Atomic {
			c.featuresUsed["atomic_group"] = true
		}
		if n.Name != nil {
			c.featuresUsed["named_group"] = true
		}
		c.analyzeFeatures(n.Body)

	case IRQuant:
		if n.Mode == ModePossessive {
			c.featuresUsed["possessive_quantifier"] = true
		} else if n.Mode == ModeLazy {
			c.featuresUsed["lazy_quantifier"] = true
		}
		c.analyzeFeatures(n.Child)

	case IRLook:
		if n.Dir == DirBehind {
			c.featuresUsed["lookbehind"] = true
		} else {
			c.featuresUsed["lookahead"] = true
		}
		c.analyzeFeatures(n.Body)

	case IRBackref:
		c.featuresUsed["backreference"] = true

	case IRCharClass:
		for _, item := range n.Items {
			if esc, ok := item.(IRClassEscape); ok && (esc.Type == "p" || esc.Type == "P") {
				c.featuresUsed["unicode_property"] = true
			}
		}

	case IRSeq:
		for _, part := range n.Parts {
			c.analyzeFeatures(part)
		}

	case IRAlt:
		for _, branch := range n.Branches {
			c.analyzeFeatures(branch)
		}
	}
}
