// Package fixtures decodes the JSON conformance-fixture format described in
// spec.md §6.3: a tagged-union encoding of AST/IR nodes (each object carries
// a "type" discriminator plus the attributes for that variant) alongside
// DSL-text/expected-error and DSL-text/expected-regex fixture shapes.
package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/thecyberlocal/strling/core"
)

// DecodeNode decodes one tagged-union AST node into a core.Node.
func DecodeNode(raw json.RawMessage) (core.Node, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}

	switch head.Type {
	case "Literal":
		var v struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.Lit{Value: v.Value}, nil

	case "Dot":
		return core.Dot{}, nil

	case "Anchor":
		var v struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.Anchor{At: v.Kind}, nil

	case "CharClass":
		var v struct {
			Negated bool              `json:"negated"`
			Items   []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		items := make([]core.ClassItem, len(v.Items))
		for i, it := range v.Items {
			item, err := decodeClassItem(it)
			if err != nil {
				return nil, fmt.Errorf("class item %d: %w", i, err)
			}
			items[i] = item
		}
		return core.CharClass{Negated: v.Negated, Items: items}, nil

	case "Group":
		var v struct {
			Capturing bool            `json:"capturing"`
			Atomic    bool            `json:"atomic"`
			Name      *string         `json:"name"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		body, err := DecodeNode(v.Body)
		if err != nil {
			return nil, fmt.Errorf("group body: %w", err)
		}
		return core.Group{Capturing: v.Capturing, Atomic: v.Atomic, Name: v.Name, Body: body}, nil

	case "Look":
		var v struct {
			Direction string          `json:"direction"`
			Negated   bool            `json:"negated"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		body, err := DecodeNode(v.Body)
		if err != nil {
			return nil, fmt.Errorf("look body: %w", err)
		}
		return core.Look{Dir: v.Direction, Neg: v.Negated, Body: body}, nil

	case "Quant":
		var v struct {
			Min   int             `json:"min"`
			Max   json.RawMessage `json:"max"`
			Mode  string          `json:"mode"`
			Child json.RawMessage `json:"child"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		child, err := DecodeNode(v.Child)
		if err != nil {
			return nil, fmt.Errorf("quant child: %w", err)
		}
		max, err := decodeMax(v.Max)
		if err != nil {
			return nil, fmt.Errorf("quant max: %w", err)
		}
		return core.Quant{Child: child, Min: v.Min, Max: max, Mode: v.Mode}, nil

	case "BackRef":
		var v struct {
			ByIndex *int    `json:"byIndex"`
			ByName  *string `json:"byName"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.Backref{ByIndex: v.ByIndex, ByName: v.ByName}, nil

	case "Alt":
		var v struct {
			Branches []json.RawMessage `json:"branches"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		branches := make([]core.Node, len(v.Branches))
		for i, b := range v.Branches {
			n, err := DecodeNode(b)
			if err != nil {
				return nil, fmt.Errorf("alt branch %d: %w", i, err)
			}
			branches[i] = n
		}
		return core.Alt{Branches: branches}, nil

	case "Seq":
		var v struct {
			Parts []json.RawMessage `json:"parts"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		parts := make([]core.Node, len(v.Parts))
		for i, p := range v.Parts {
			n, err := DecodeNode(p)
			if err != nil {
				return nil, fmt.Errorf("seq part %d: %w", i, err)
			}
			parts[i] = n
		}
		return core.Seq{Parts: parts}, nil
	}

	return nil, fmt.Errorf("unknown AST node type %q", head.Type)
}

func decodeMax(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeClassItem(raw json.RawMessage) (core.ClassItem, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case "Literal":
		var v struct {
			Char string `json:"char"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.ClassLiteral{Ch: v.Char}, nil

	case "Range":
		var v struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.ClassRange{FromCh: v.From, ToCh: v.To}, nil

	case "Shorthand":
		var v struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.ClassEscape{Type: v.Kind}, nil

	case "UnicodeProp":
		var v struct {
			Kind     string `json:"kind"`
			Property string `json:"property"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.ClassEscape{Type: v.Kind, Property: &v.Property}, nil
	}

	return nil, fmt.Errorf("unknown class item type %q", head.Type)
}
