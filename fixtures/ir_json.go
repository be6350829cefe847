package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/thecyberlocal/strling/core"
)

// DecodeIR decodes one tagged-union node into a core.IROp, using the same
// discriminator convention as DecodeNode. expected_ir fixtures describe IR
// trees variant-for-variant against the AST encoding (spec.md §4.3: IR
// mirrors AST one-for-one except for the documented normalizations), so the
// shapes below track DecodeNode's closely.
func DecodeIR(raw json.RawMessage) (core.IROp, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode ir node: %w", err)
	}

	switch head.Type {
	case "Literal":
		var v struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRLit{Value: v.Value}, nil

	case "Dot":
		return core.IRDot{}, nil

	case "Anchor":
		var v struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRAnchor{At: v.Kind}, nil

	case "CharClass":
		var v struct {
			Negated bool              `json:"negated"`
			Items   []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		items := make([]core.IRClassItem, len(v.Items))
		for i, it := range v.Items {
			item, err := decodeIRClassItem(it)
			if err != nil {
				return nil, fmt.Errorf("class item %d: %w", i, err)
			}
			items[i] = item
		}
		return core.IRCharClass{Negated: v.Negated, Items: items}, nil

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
		body, err := DecodeIR(v.Body)
		if err != nil {
			return nil, fmt.Errorf("group body: %w", err)
		}
		return core.IRGroup{Capturing: v.Capturing, Atomic: v.Atomic, Name: v.Name, Body: body}, nil

	case "Look":
		var v struct {
			Direction string          `json:"direction"`
			Negated   bool            `json:"negated"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		body, err := DecodeIR(v.Body)
		if err != nil {
			return nil, fmt.Errorf("look body: %w", err)
		}
		return core.IRLook{Dir: v.Direction, Neg: v.Negated, Body: body}, nil

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
		child, err := DecodeIR(v.Child)
		if err != nil {
			return nil, fmt.Errorf("quant child: %w", err)
		}
		max, err := decodeMax(v.Max)
		if err != nil {
			return nil, fmt.Errorf("quant max: %w", err)
		}
		return core.IRQuant{Child: child, Min: v.Min, Max: max, Mode: v.Mode}, nil

	case "BackRef":
		var v struct {
			ByIndex *int    `json:"byIndex"`
			ByName  *string `json:"byName"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRBackref{ByIndex: v.ByIndex, ByName: v.ByName}, nil

	case "Alt":
		var v struct {
			Branches []json.RawMessage `json:"branches"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		branches := make([]core.IROp, len(v.Branches))
		for i, b := range v.Branches {
			n, err := DecodeIR(b)
			if err != nil {
				return nil, fmt.Errorf("alt branch %d: %w", i, err)
			}
			branches[i] = n
		}
		return core.IRAlt{Branches: branches}, nil

	case "Seq":
		var v struct {
			Parts []json.RawMessage `json:"parts"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		parts := make([]core.IROp, len(v.Parts))
		for i, p := range v.Parts {
			n, err := DecodeIR(p)
			if err != nil {
				return nil, fmt.Errorf("seq part %d: %w", i, err)
			}
			parts[i] = n
		}
		return core.IRSeq{Parts: parts}, nil
	}

	return nil, fmt.Errorf("unknown IR node type %q", head.Type)
}

func decodeIRClassItem(raw json.RawMessage) (core.IRClassItem, error) {
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
		return core.IRClassLiteral{Ch: v.Char}, nil

	case "Range":
		var v struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRClassRange{FromCh: v.From, ToCh: v.To}, nil

	case "Shorthand":
		var v struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRClassEscape{Type: v.Kind}, nil

	case "UnicodeProp":
		var v struct {
			Kind     string `json:"kind"`
			Property string `json:"property"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return core.IRClassEscape{Type: v.Kind, Property: &v.Property}, nil
	}

	return nil, fmt.Errorf("unknown class item type %q", head.Type)
}
