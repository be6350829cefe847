package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Case is one conformance fixture (spec.md §6.3): either an AST-to-IR pair
// or a DSL-text pair expecting either a diagnostic or a specific rendered
// pattern.
type Case struct {
	Name string
	Stem string

	InputAST   json.RawMessage
	ExpectedIR json.RawMessage

	InputDSL      string
	ExpectedError string
	ExpectedRegex string
}

// TestName maps a fixture file stem to its conventional test name
// (spec.md §6.3: "semantic_duplicates" names the duplicate-capture test,
// "semantic_ranges" names the class-range validation test, anything else
// becomes "conformance_<stem>").
func TestName(stem string) string {
	switch stem {
	case "semantic_duplicates":
		return "duplicate-capture"
	case "semantic_ranges":
		return "class-range validation"
	default:
		return "conformance_" + stem
	}
}

// Load reads every *.json fixture in dir, validates its shape, and decodes
// it into a Case. Fixtures are returned sorted by file name for stable test
// ordering.
func Load(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading fixtures directory")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		c, err := loadOne(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "fixture %s", name)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func loadOne(path string) (Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Case{}, errors.Wrap(err, "reading fixture")
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return Case{}, errors.Wrap(err, "parsing fixture")
	}
	if err := ValidateShape(generic); err != nil {
		return Case{}, err
	}

	var doc struct {
		InputAST      json.RawMessage `json:"input_ast"`
		ExpectedIR    json.RawMessage `json:"expected_ir"`
		InputDSL      string          `json:"input_dsl"`
		ExpectedError string          `json:"expected_error"`
		ExpectedRegex string          `json:"expected_regex"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Case{}, errors.Wrap(err, "decoding fixture")
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	return Case{
		Name:          TestName(stem),
		Stem:          stem,
		InputAST:      doc.InputAST,
		ExpectedIR:    doc.ExpectedIR,
		InputDSL:      doc.InputDSL,
		ExpectedError: doc.ExpectedError,
		ExpectedRegex: doc.ExpectedRegex,
	}, nil
}
