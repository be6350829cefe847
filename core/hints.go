package core

import "strings"

// hint returns a short, beginner-friendly suggestion for a diagnostic
// message. It is a best-effort lookup by keyword, not a general NLP engine:
// unmatched messages get no hint rather than a generic one.
func hint(message string) string {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "duplicate group name"):
		return "each (?<name>...) must use a unique name within the pattern; rename one of them."
	case strings.Contains(m, "undefined group") || strings.Contains(m, "undefined backreference"):
		return "a backreference must point to a capturing group that already appears earlier in (or encloses) the pattern."
	case strings.Contains(m, "invalid character range"):
		return "a class range a-b requires codepoint(a) <= codepoint(b); swap the endpoints or split into two items."
	case strings.Contains(m, "nesting too deep"):
		return "flatten or split the pattern; groups and lookarounds are limited to 1000 levels of nesting."
	case strings.Contains(m, "quantify anchor") || strings.Contains(m, "quantify an anchor"):
		return "anchors like ^ $ \\b \\A are zero-width and cannot be repeated; remove the quantifier."
	case strings.Contains(m, "nothing to") || strings.Contains(m, "unexpected special character"):
		return "a quantifier (* + ? {m,n}) needs a preceding atom to repeat; escape it or move it after one."
	case strings.Contains(m, "unterminated") || strings.Contains(m, "unclosed"):
		return "add the missing closing delimiter for this construct."
	case strings.Contains(m, "unmatched ')'"):
		return "remove the extra ')' or add a matching '(' earlier in the pattern."
	case strings.Contains(m, "invalid flag"):
		return "%flags accepts only the letters i, m, s, u, x."
	case strings.Contains(m, "alternation"):
		return "each branch of a | needs content on both sides; remove the empty branch or add one."
	default:
		return ""
	}
}
