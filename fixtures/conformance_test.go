package fixtures_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/thecyberlocal/strling/core"
	"github.com/thecyberlocal/strling/emitters"
	"github.com/thecyberlocal/strling/fixtures"
)

func TestConformance(t *testing.T) {
	cases, err := fixtures.Load("../testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			switch {
			case tc.InputAST != nil:
				runASTCase(t, tc)
			case tc.ExpectedError != "":
				runErrorCase(t, tc)
			case tc.ExpectedRegex != "":
				runRegexCase(t, tc)
			default:
				t.Fatalf("fixture %s matches no known case shape", tc.Stem)
			}
		})
	}
}

func runASTCase(t *testing.T, tc fixtures.Case) {
	ast, err := fixtures.DecodeNode(tc.InputAST)
	require.NoError(t, err, "decoding input_ast")

	wantIR, err := fixtures.DecodeIR(tc.ExpectedIR)
	require.NoError(t, err, "decoding expected_ir")

	gotIR, derr := core.Compile(ast)
	if derr != nil {
		t.Fatalf("Compile returned unexpected diagnostic: %v", derr)
	}

	if diff := cmp.Diff(wantIR, gotIR); diff != "" {
		t.Errorf("compiled IR mismatch (-want +got):\n%s", diff)
	}
}

func runErrorCase(t *testing.T, tc fixtures.Case) {
	_, _, err := core.Parse(tc.InputDSL)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error containing %q", tc.InputDSL, tc.ExpectedError)
	}
	require.Contains(t, err.Error(), tc.ExpectedError)
}

func runRegexCase(t *testing.T, tc fixtures.Case) {
	flags, ast, err := core.Parse(tc.InputDSL)
	require.NoError(t, err, "Parse(%q)", tc.InputDSL)

	ir, derr := core.Compile(ast)
	if derr != nil {
		t.Fatalf("Compile returned unexpected diagnostic: %v", derr)
	}

	got := emitters.Emit(ir, flags)
	require.Equal(t, tc.ExpectedRegex, got)
}
