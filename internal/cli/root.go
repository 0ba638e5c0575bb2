// Package cli provides the Cobra command structure for uncrustify.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vobal-jb/uncrustify/internal/logging"
	"github.com/vobal-jb/uncrustify/pkg/chunk"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root uncrustify command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "uncrustify",
		Short: "Inspect the chunk list of source files",
		Long: `uncrustify tokenizes C-family source files into the chunk list that the
formatting rules operate on and renders it for inspection: one classified
token per row with its nesting level, parent construct, and context flags.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
				installMutationTrace()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newDumpCommand(&configPath, &color))
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// installMutationTrace routes the audited-setter trace into the debug log.
func installMutationTrace() {
	logger := logging.Default()
	chunk.SetTrace(func(ev chunk.TraceEvent) {
		logger.Debug("chunk mutation",
			logging.FieldOp, ev.Op,
			logging.FieldCallSite, callSite(ev),
			logging.FieldOrigLine, ev.OrigLine,
			logging.FieldOrigCol, ev.OrigCol,
			logging.FieldText, ev.Text,
			logging.FieldOld, ev.Old,
			logging.FieldNew, ev.New,
		)
	})
}

func callSite(ev chunk.TraceEvent) string {
	if ev.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", ev.File, ev.Line)
}
