package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxgo/income-tax-calculator/internal/calculation"
	"github.com/taxgo/income-tax-calculator/internal/config"
	"github.com/taxgo/income-tax-calculator/internal/output"
	"github.com/taxgo/income-tax-calculator/internal/schedule"
)

var (
	inputFile  string
	formatName string
	outputFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taxcalc",
		Short: "Personal income tax calculator",
		Long:  "Computes personal income tax from income figures, capped deductions, and a progressive rate schedule.",
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a tax calculation from an input file",
		RunE:  runCalculate,
	}
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to YAML input file (required)")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "Output format: console, json, csv")
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	calculateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	if err := calculateCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the canonical default rate schedule",
		RunE:  runSchedule,
	}

	rootCmd.AddCommand(calculateCmd, scheduleCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngineWithRules(in.Rules)
	if verbose {
		level := slog.LevelDebug
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		engine.SetLogger(calculation.SlogLogger{L: logger})
	}

	result := engine.Calculate(in.Income, in.Deductions, in.Schedule)

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q", formatName)
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputFile)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runSchedule(cmd *cobra.Command, args []string) error {
	editor := schedule.NewEditor()
	fmt.Fprintln(cmd.OutOrStdout(), "Default rate schedule:")
	lower := "0.00"
	for _, band := range editor.Bands() {
		upper := "∞"
		if band.UpperBound != nil {
			upper = band.UpperBound.StringFixed(2)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s - %s: %s%%\n", lower, upper, band.RatePercent.StringFixed(0))
		lower = upper
	}
	return nil
}
