package main

import (
	"fmt"
	"strconv"

	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/njgolf/golfrank/internal/reporting"
	"github.com/spf13/cobra"
)

func newCurveCommand(global *globalOptions) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "curve [price...]",
		Short: "Look up value scores on the price curve",
		Long: `Print the value score the price curve assigns to each price, using the
configured lookup policy. With no prices, print the calibration points.

Examples:
  golfrank curve 45 60 82.5
  golfrank curve --policy nearest '$1,050'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurve(cmd, global, policy, args)
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "", "Lookup policy: interpolate | bounded | nearest | exact (default: curve.policy from config)")
	return cmd
}

func runCurve(cmd *cobra.Command, global *globalOptions, policyFlag string, args []string) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	if policyFlag != "" {
		cfg.Curve.Policy = policyFlag
	}
	policy, err := ranking.ParsePolicy(cfg.Curve.Policy)
	if err != nil {
		return err
	}

	curve, err := ranking.LoadCurveFile(cfg.Paths.Curve)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintf(w, "%s  %s\n", padLeft("Price", colPrice), "Value score") //nolint:errcheck
		for _, pt := range curve.Points() {
			fmt.Fprintf(w, "%s  %s\n", padLeft(reporting.FormatPrice(pt.Price), colPrice), formatScore(pt.ValueScore)) //nolint:errcheck
		}
		return nil
	}

	prices := make([]float64, len(args))
	for i, arg := range args {
		prices[i], err = ranking.ParsePrice("price", arg)
		if err != nil {
			return err
		}
	}

	for _, price := range prices {
		value, err := curve.Value(price, policy)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
			padLeft(reporting.FormatPrice(price), colPrice),
			padLeft(formatScore(value), 6),
			reporting.InterpretValue(value))
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(ranking.Round(v, 3), 'f', -1, 64)
}
