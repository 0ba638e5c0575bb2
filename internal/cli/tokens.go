package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vobal-jb/uncrustify/pkg/token"
)

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the token kind vocabulary",
		Long:  `List every token kind the lexer can produce, with its broad category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := token.ValidateMatchTable(); err != nil {
				return fmt.Errorf("bracket match table: %w", err)
			}
			out := cmd.OutOrStdout()
			for k := token.Kind(0); int(k) < token.Count(); k++ {
				fmt.Fprintf(out, "%-20s %s\n", k, token.CategoryOf(k))
			}
			return nil
		},
	}
}
