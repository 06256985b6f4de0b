package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/tier"
	"github.com/hullochat/hullo/pkg/diff"
)

type diffOptions struct {
	pathA    string
	pathB    string
	tierName string
	verbose  bool
}

var diffCmdRunner = runDiff

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <config-a> <config-b>",
		Short: "Compare the rendered variable sets of two documents",
		Long: `Diff renders both documents through the full pipeline for the same tier and
prints a unified diff of the resulting variable sets. Two documents that
differ only in fields the tier resets will render identically.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.pathA = args[0]
			opts.pathB = args[1]
			opts.verbose = rootFlags.verbose
			return diffCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")

	return cmd
}

func runDiff(cmd *cobra.Command, opts *diffOptions) error {
	code, err := runDiffInternal(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func runDiffInternal(stdout, stderr io.Writer, opts *diffOptions) (int, error) {
	t, err := tier.Parse(opts.tierName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2, nil
	}

	log, err := newCommandLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 3, nil
	}
	eng := engine.New(log)

	resultA, pathA, code := renderForDiff(stderr, eng, opts.pathA, t)
	if code != 0 {
		return code, nil
	}
	resultB, pathB, code := renderForDiff(stderr, eng, opts.pathB, t)
	if code != 0 {
		return code, nil
	}

	changes := diff.DiffVariables(resultA.Variables.Map(), resultB.Variables.Map())
	if len(changes) == 0 {
		fmt.Fprintln(stdout, "No differences: both documents render the same variable set.")
		return 0, nil
	}

	unified := diff.GenerateUnifiedDiff(
		[]byte(resultA.Variables.CSS()),
		[]byte(resultB.Variables.CSS()),
		pathA,
		pathB,
	)
	fmt.Fprint(stdout, unified)

	added, removed, modified := 0, 0, 0
	for _, c := range changes {
		switch c.Kind {
		case diff.ChangeAdded:
			added++
		case diff.ChangeRemoved:
			removed++
		case diff.ChangeModified:
			modified++
		}
	}
	fmt.Fprintf(stdout, "\n%d variable(s) differ (%d added, %d removed, %d modified).\n",
		len(changes), added, removed, modified)

	return 0, nil
}

func renderForDiff(stderr io.Writer, eng *engine.Engine, path string, t tier.Tier) (*engine.Result, string, int) {
	cfg, absPath, err := loadDocument(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing %s: %v\n", path, err)
		return nil, "", 2
	}

	result, err := eng.Process(cfg, t)
	if err != nil {
		fmt.Fprintf(stderr, "Pipeline error for %s: %v\n", path, err)
		return nil, "", 3
	}

	return result, absPath, 0
}
