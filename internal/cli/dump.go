package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vobal-jb/uncrustify/internal/configloader"
	"github.com/vobal-jb/uncrustify/internal/logging"
	"github.com/vobal-jb/uncrustify/internal/ui/pretty"
	"github.com/vobal-jb/uncrustify/pkg/lang"
	"github.com/vobal-jb/uncrustify/pkg/lexer"
	"github.com/vobal-jb/uncrustify/pkg/passes"
)

// ErrNoFiles is returned when no input file matches the given patterns.
var ErrNoFiles = errors.New("no input files matched")

type dumpFlags struct {
	languages string
	noPasses  bool
}

func newDumpCommand(configPath, color *string) *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump [patterns...]",
		Short: "Tokenize files and print their chunk lists",
		Long: `Tokenize the given source files and print each one's chunk list.

Patterns support doublestar globs. The language is detected per file from
its extension and content unless forced with --lang.

Examples:
  uncrustify dump src/main.cpp
  uncrustify dump 'src/**/*.c' 'include/**/*.h'
  uncrustify dump --lang cpp --no-passes lib.hpp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, *configPath, *color, flags)
		},
	}

	cmd.Flags().StringVar(&flags.languages, "lang", "",
		"force the language set (e.g. cpp or c,oc) instead of detecting")
	cmd.Flags().BoolVar(&flags.noPasses, "no-passes", false,
		"skip the classification passes after lexing")

	return cmd
}

func runDump(cmd *cobra.Command, args []string, configPath, color string, flags *dumpFlags) error {
	logger := logging.FromContext(cmd.Context())

	loaded, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return err
	}
	cfg := loaded.Config
	if loaded.LoadedFrom != "" {
		logger.Debug("loaded config", logging.FieldPath, loaded.LoadedFrom)
	}

	if flags.languages == "" {
		flags.languages = cfg.Languages
	}
	if color == "" || color == "auto" {
		color = string(cfg.Color)
	}
	runPasses := cfg.Passes && !flags.noPasses

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoFiles
	}
	logger.Debug("dumping files", logging.FieldFiles, len(files))

	styles := pretty.NewStyles(pretty.ColorEnabled(color, os.Stdout))
	width := terminalWidth()
	formatter := pretty.NewDumpFormatter(styles, width, cfg.Dump)

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		langs := lang.Parse(flags.languages)
		if langs.IsEmpty() {
			langs = lang.FromPath(path, content)
		}
		logger.Debug("tokenizing",
			logging.FieldPath, path,
			logging.FieldLanguages, langs.String(),
		)

		store := lexer.Tokenize(content, langs)
		if runPasses {
			passes.ParameterPack(store)
		}
		logger.Debug("tokenized",
			logging.FieldPath, path,
			logging.FieldChunks, store.Len(),
		)

		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(path, store))
	}
	return nil
}

// expandPatterns resolves glob patterns to files, passing plain paths
// through untouched.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}

		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		matches, err := doublestar.Glob(os.DirFS(base), rest)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(base, m)
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}
