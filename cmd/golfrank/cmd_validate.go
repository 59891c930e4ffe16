package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/njgolf/golfrank/internal/projectconfig"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/njgolf/golfrank/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config file and both input tables",
		Long: `Check the config file against its schema, then load both tables and score
every course without writing anything.

Every problem is listed. The command exits with status 1 when any problem is
found, so it can gate commits or CI jobs that edit the tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, global)
		},
	}
}

func runValidate(cmd *cobra.Command, global *globalOptions) error {
	w := cmd.OutOrStdout()
	var issues []string

	configPath, err := configFileToValidate(global)
	if err != nil {
		return err
	}
	if configPath != "" {
		schemaErrs, err := validation.ValidateConfigFile(configPath)
		if err != nil {
			return err
		}
		for _, e := range schemaErrs {
			issues = append(issues, fmt.Sprintf("%s: %s", configPath, e))
		}
		if len(schemaErrs) == 0 {
			fmt.Fprintf(w, "✅ %s matches the config schema\n", configPath) //nolint:errcheck
		}
	} else {
		fmt.Fprintf(w, "— no %s found, using defaults\n", projectconfig.FileName) //nolint:errcheck
	}

	cfg, err := loadConfig(global)
	if err != nil {
		issues = append(issues, errorLines(err)...)
		return reportIssues(cmd, issues)
	}

	ranked, err := rankCourses(cfg)
	if err != nil {
		if !errors.Is(err, ranking.ErrValidation) && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		issues = append(issues, errorLines(err)...)
		return reportIssues(cmd, issues)
	}
	fmt.Fprintf(w, "✅ %d courses scored against %s (%s policy)\n", //nolint:errcheck
		len(ranked), cfg.Paths.Curve, cfg.RankingOptions().Policy)

	return reportIssues(cmd, issues)
}

// configFileToValidate returns the config file validate should check, or ""
// when none is in use.
func configFileToValidate(global *globalOptions) (string, error) {
	if global.configPath != "" {
		return global.configPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	path, err := projectconfig.FindConfigFile(wd)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	return path, err
}

func reportIssues(cmd *cobra.Command, issues []string) error {
	w := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(w, "All checks passed.") //nolint:errcheck
		return nil
	}

	fmt.Fprintf(w, "\n❌ %d issue(s) found:\n", len(issues)) //nolint:errcheck
	for _, issue := range issues {
		fmt.Fprintf(w, "  - %s\n", issue) //nolint:errcheck
	}
	return &IssuesError{Count: len(issues)}
}

// errorLines splits a joined error into one line per problem.
func errorLines(err error) []string {
	var lines []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
