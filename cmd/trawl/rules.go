package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/config"
	"github.com/qforic/trawl/internal/ignore"
	"github.com/qforic/trawl/internal/logging"
	"github.com/qforic/trawl/internal/streams"
)

// ruleFlags holds the filtering flags shared by scan and index.
type ruleFlags struct {
	ignorePaths []string
	globs       []string
	regexes     []string
	rulesFile   string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.ignorePaths, "ignore", "i", nil, "existing file or directory to ignore (repeatable)")
	cmd.Flags().StringArrayVarP(&f.globs, "glob", "g", nil, "wildcard pattern to ignore; * and ? also match / (repeatable)")
	cmd.Flags().StringArrayVarP(&f.regexes, "regex", "e", nil, "regex to ignore, matched anywhere in the path (repeatable)")
	cmd.Flags().StringVarP(&f.rulesFile, "rules-file", "f", "", "file of ignore paths, one per line (- for stdin)")
}

// rules builds the ignore rules from the flags: paths first, then the
// rules file, then globs and regexes.
func (f *ruleFlags) rules(logger *log.Logger) ([]ignore.Rule, error) {
	var rules []ignore.Rule
	for _, p := range f.ignorePaths {
		rule, err := ignore.ParsePath(p)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if f.rulesFile != "" {
		in, desc, err := streams.Input(f.rulesFile)
		if err != nil {
			return nil, fmt.Errorf("rules file: %w", err)
		}
		fileRules, err := ignore.LoadRules(in)
		closeErr := in.Close()
		if err != nil {
			return nil, fmt.Errorf("rules from %s: %w", desc, err)
		}
		if closeErr != nil {
			return nil, closeErr
		}
		logger.Debug("loaded rules", "source", desc, "count", len(fileRules))
		rules = append(rules, fileRules...)
	}
	for _, g := range f.globs {
		rule, err := ignore.NewGlob(g)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	for _, r := range f.regexes {
		rule, err := ignore.NewRegex(r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func rootsFromArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// resolveRate picks the throttle: the flag when set, otherwise the
// environment default.
func resolveRate(flagRate int, cfg *config.Config) int {
	if flagRate > 0 {
		return flagRate
	}
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			logging.Logger().Warn("config", "err", err)
			return 0
		}
		cfg = loaded
	}
	return cfg.MaxFilesPerSecond()
}
