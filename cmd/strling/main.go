// Command strling drives the Parser → Compiler → Emitter pipeline from the
// shell: compile DSL text to a PCRE2 pattern, or check it for diagnostics
// without emitting anything.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thecyberlocal/strling/core"
	"github.com/thecyberlocal/strling/emitters"
	"github.com/thecyberlocal/strling/internal/buildinfo"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "strling",
		Short:         "Compile STRling patterns to PCRE2 regular expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompileCmd(), newCheckCmd(), newVersionCmd())
	return root
}

func newCompileCmd() *cobra.Command {
	var file string
	var format string

	cmd := &cobra.Command{
		Use:   "compile [pattern]",
		Short: "Compile a STRling pattern into a PCRE2 pattern string",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readPattern(file, args)
			if err != nil {
				return err
			}

			flags, ast, derr := core.Parse(src)
			if derr != nil {
				return reportDiagnostic(cmd, derr, format)
			}

			compiler := core.NewCompiler()
			ir, derr := compiler.Compile(ast)
			if derr != nil {
				return reportDiagnostic(cmd, derr, format)
			}

			pattern := emitters.Emit(ir, flags)
			log.WithFields(logrus.Fields{
				"flags":    flags.ToMap(),
				"features": compiler.FeaturesUsed(),
			}).Debug("compiled pattern")

			switch format {
			case "json":
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"pattern": pattern,
					"flags":   flags.ToMap(),
				})
			default:
				fmt.Fprintln(cmd.OutOrStdout(), pattern)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the pattern from a file instead of an argument")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var file string
	var format string

	cmd := &cobra.Command{
		Use:   "check [pattern]",
		Short: "Validate a STRling pattern without emitting a regex",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readPattern(file, args)
			if err != nil {
				return err
			}

			_, ast, derr := core.Parse(src)
			if derr != nil {
				return reportDiagnostic(cmd, derr, format)
			}

			compiler := core.NewCompiler()
			if _, derr := compiler.Compile(ast); derr != nil {
				return reportDiagnostic(cmd, derr, format)
			}
			log.WithField("features", compiler.FeaturesUsed()).Debug("pattern checked")

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the pattern from a file instead of an argument")
	cmd.Flags().StringVar(&format, "format", "text", "diagnostic format: text or lsp")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print strling's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}

func readPattern(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "reading pattern file %s", file)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", errors.New("a pattern is required, either as an argument or via --file")
	}
	return args[0], nil
}

func reportDiagnostic(cmd *cobra.Command, derr error, format string) error {
	d, ok := derr.(*core.Diagnostic)
	if !ok {
		return derr
	}

	log.WithFields(logrus.Fields{"kind": d.Kind.String(), "pos": d.Pos}).Debug("diagnostic raised")

	switch format {
	case "lsp":
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(d.ToLSPDiagnostic()); err != nil {
			return errors.Wrap(err, "encoding LSP diagnostic")
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), d.Error())
	}
	return errors.New(d.Message)
}
