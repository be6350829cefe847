// Package core contains the fundamental data structures and types for the
// STRling compiler: AST nodes, IR nodes, diagnostics, the parser, and the
// compiler.
package core

import (
	"fmt"
	"strings"
)

// Kind classifies a Diagnostic into the closed taxonomy of spec.md §7.
type Kind int

const (
	// KindSyntax covers malformed pattern text: unterminated constructs,
	// unmatched delimiters, quantifiers with nothing to repeat.
	KindSyntax Kind = iota
	// KindSemantics covers well-formed text that violates a naming or
	// referential rule: duplicate group names, undefined backreferences,
	// invalid character ranges, quantified anchors.
	KindSemantics
	// KindBound covers numeric/structural limits: quantifier min > max,
	// negative min, nesting too deep.
	KindBound
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax"
	case KindSemantics:
		return "Semantics"
	case KindBound:
		return "Bound"
	default:
		return "Unknown"
	}
}

// Diagnostic is the one failure value every stage of the pipeline can
// produce (spec.md §4.1, §7). It carries a human-readable message, the byte
// offset in the original DSL source where the problem was detected, and
// (when available) the source text for rendering a caret and a hint.
//
// Diagnostics are values, not control flow with side channels: the first
// diagnostic raised by a stage is the only one returned, and it is never
// rewritten by a downstream stage.
type Diagnostic struct {
	Message string
	Pos     int
	Text    string
	Kind    Kind
	Hint    string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.format()
}

func (d *Diagnostic) format() string {
	if d.Text == "" {
		return fmt.Sprintf("%s at position %d", d.Message, d.Pos)
	}

	lines := strings.Split(d.Text, "\n")
	currentPos := 0
	lineNum := 1
	lineText := ""
	col := d.Pos

	for i, line := range lines {
		lineLen := len(line) + 1 // +1 for the newline
		if currentPos+lineLen > d.Pos {
			lineNum = i + 1
			lineText = line
			col = d.Pos - currentPos
			break
		}
		currentPos += lineLen
	}

	if lineText == "" && len(lines) > 0 {
		lineNum = len(lines)
		lineText = lines[len(lines)-1]
		col = len(lineText)
	}

	parts := []string{
		fmt.Sprintf("STRling %s Error: %s", d.Kind, d.Message),
		"",
		fmt.Sprintf("> %d | %s", lineNum, lineText),
		fmt.Sprintf(">   | %s^", strings.Repeat(" ", col)),
	}
	if d.Hint != "" {
		parts = append(parts, "", fmt.Sprintf("Hint: %s", d.Hint))
	}
	return strings.Join(parts, "\n")
}

// LSPDiagnostic is the Language Server Protocol rendering of a Diagnostic,
// used by the CLI's --format=lsp output.
type LSPDiagnostic struct {
	Range    LSPRange `json:"range"`
	Severity int      `json:"severity"`
	Message  string   `json:"message"`
	Source   string   `json:"source"`
	Code     string   `json:"code"`
}

type LSPRange struct {
	Start LSPPosition `json:"start"`
	End   LSPPosition `json:"end"`
}

type LSPPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// ToLSPDiagnostic converts the diagnostic to LSP Diagnostic form.
func (d *Diagnostic) ToLSPDiagnostic() LSPDiagnostic {
	var lines []string
	if d.Text != "" {
		lines = strings.Split(d.Text, "\n")
	}

	currentPos := 0
	lineNum := 0
	col := d.Pos
	found := false

	for i, line := range lines {
		lineLen := len(line) + 1
		if currentPos+lineLen > d.Pos {
			lineNum = i
			col = d.Pos - currentPos
			found = true
			break
		}
		currentPos += lineLen
	}
	if len(lines) > 0 && !found {
		lineNum = len(lines) - 1
		col = len(lines[len(lines)-1])
	}

	msg := d.Message
	if d.Hint != "" {
		msg += fmt.Sprintf("\n\nHint: %s", d.Hint)
	}

	return LSPDiagnostic{
		Range: LSPRange{
			Start: LSPPosition{Line: lineNum, Character: col},
			End:   LSPPosition{Line: lineNum, Character: col + 1},
		},
		Severity: 1, // 1 = Error
		Message:  msg,
		Source:   "STRling",
		Code:     errorCode(d.Kind, d.Message),
	}
}

// errorCode normalizes a diagnostic into a stable snake_case code.
func errorCode(kind Kind, message string) string {
	code := strings.ToLower(kind.String() + "_" + message)
	replacer := strings.NewReplacer(
		" ", "_", "'", "", "\"", "", "(", "", ")", "",
		"[", "", "]", "", "{", "", "}", "", "\\", "", "/", "_",
	)
	code = replacer.Replace(code)
	parts := strings.Split(code, "_")
	filtered := parts[:0]
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	return strings.Join(filtered, "_")
}
