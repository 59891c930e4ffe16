package main

import (
	"fmt"
	"strings"

	"github.com/njgolf/golfrank/internal/wizard"
	"github.com/spf13/cobra"
)

func newAddCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [course name]",
		Short: "Add a course to the ratings table",
		Long: `Interactively collect ratings and the Saturday noon price for a new course
and append it to the ratings table. Each answer is validated as it is
entered; the row is only written when the whole course is valid.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			entry, err := wizard.RunCourseWizard(cmd.InOrStdin(), cmd.OutOrStdout(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := wizard.AppendCourse(cfg.Paths.Ratings, entry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s. Run 'golfrank rank' to update the rankings.\n", entry.Course, cfg.Paths.Ratings) //nolint:errcheck
			return nil
		},
	}
}
