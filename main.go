package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := DefaultConfig

	cmd := &cobra.Command{
		Use:   "resolve-tests --mapping FILE --out FILE [--caseIds IDS]",
		Short: "Resolve test case IDs to test selectors",
		Long: `resolve-tests reads a mapping of test case IDs to test selectors, keeps the
rows whose case ID was requested (all rows when --caseIds is empty), drops
rows whose file does not exist, and writes the remaining selectors one per
line to --out.

Exit codes:
  1  usage error
  2  mapping file not found
  3  malformed mapping row
  4  none of the requested case IDs resolved
  5  mapping file has no mappings
  6  mapping file could not be read or parsed
  7  output file could not be written
  8  output file failed verification`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, cfg.Quiet)
			defer func() { _ = log.Sync() }()
			return run(&cfg, stdin, stdout, log)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfg.Mapping, "mapping", cfg.Mapping, "path to the mapping file (JSON, or YAML by extension)")
	f.StringVar(&cfg.CaseIDs, "caseIds", cfg.CaseIDs, "comma or whitespace separated case IDs; empty selects all, - reads stdin")
	f.StringVar(&cfg.Out, "out", cfg.Out, "path of the selector file to write")
	f.StringVar(&cfg.Root, "root", cfg.Root, "directory that relative selector files are checked against")
	f.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "separator between a selector's file and its sub-selector")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "read the output file back and check it against the mapping")
	f.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress warnings")
	_ = cmd.MarkFlagRequired("mapping")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// run performs one resolution. Nothing is written unless every fatal
// check has passed.
func run(cfg *Config, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	input, err := cfg.caseIDInput(stdin)
	if err != nil {
		return err
	}
	requested := parseCaseIDs(input, log)

	spec, err := loadMapping(cfg.Mapping)
	if err != nil {
		return err
	}
	selectors, err := newResolver(cfg, log).resolve(spec, requested)
	if err != nil {
		return err
	}

	if err := writeSelectors(cfg.Out, selectors); err != nil {
		return err
	}
	if cfg.Verify {
		if err := verifyOutput(cfg.Out, spec, selectors); err != nil {
			return err
		}
	}
	if err := printSelectors(stdout, selectors); err != nil {
		return &ResolveError{Kind: KindWriteOutput, Err: fmt.Errorf("failed to print selectors: %w", err)}
	}
	return nil
}

// execute runs the command with args and returns the exit status.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	log := newLogger(stderr, false)
	log.Error(err.Error())
	_ = log.Sync()

	code := exitCode(err)
	if code == KindUsage.ExitCode() {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	}
	return code
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
