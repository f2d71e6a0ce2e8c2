// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glennib/z157/internal/config"
	"github.com/glennib/z157/internal/ui"
)

// rootOptions holds global flags and the resolved config for one invocation.
type rootOptions struct {
	jsonOutput bool
	configPath string
	maxDepth   int

	cfg *config.Config
}

// newRootCmd builds the full command tree. Each call returns an independent
// tree, so flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "z157",
		Short: "z157 - parse and apply sparse fieldset filters",
		Long: `z157 parses field filters such as "(name,bio(height,age))" as described by
rule #157 of the Zalando RESTful API guidelines, and applies them to JSON.

A leading "!" turns the filter into a denylist: "!(bio)" keeps everything
except bio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return opts.handleError(cmd, ErrConfigInvalid, err, "Fix the config file or pass --config with another path")
			}
			if cmd.Flags().Changed("max-depth") {
				if opts.maxDepth < 0 {
					return opts.handleErrorMsg(cmd, ErrInvalidInput, "--max-depth must be >= 0", "")
				}
				cfg.MaxDepth = opts.maxDepth
			}
			ui.ConfigureTheme(cfg.UI.Accent)
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", config.DefaultMaxDepth, "Maximum nesting depth of a filter (0 = unbounded)")

	cmd.AddCommand(
		newParseCmd(opts),
		newWalkCmd(opts),
		newLeavesCmd(opts),
		newIndexCmd(opts),
		newProjectCmd(opts),
		newGrammarCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}
