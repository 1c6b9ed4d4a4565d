package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"goab/adapters/tabular"
	"goab/app"
	"goab/domain/analysis"
	"goab/domain/experiment"
	"goab/internal"
	"goab/internal/config"
	"goab/internal/report"
	"goab/internal/sampledata"

	"github.com/spf13/cobra"
)

var outputFormat string

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := internal.NewDefaultLogger()
	svc := app.NewAnalysisService(log)
	sweeper := app.NewSweepService(svc, log)

	rootCmd := &cobra.Command{
		Use:   "abcli",
		Short: "Statistical significance analysis for A/B experiments",
	}
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text",
		"Output format: text, json, markdown or html")

	rootCmd.AddCommand(
		newProportionsCmd(svc, cfg),
		newContinuousCmd(svc, cfg),
		newSampleSizeCmd(svc, cfg),
		newSweepCmd(sweeper, cfg),
		newExperimentsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProportionsCmd(svc *app.AnalysisService, cfg *config.Config) *cobra.Command {
	var (
		trial experiment.ProportionTrial
		alpha float64
	)

	cmd := &cobra.Command{
		Use:   "proportions",
		Short: "Two-proportion z-test on conversion counts",
		Long: `Run a two-proportion z-test between a control and a test arm.

Example: abcli proportions --control-conversions 120 --control-visitors 2400 \
  --test-conversions 150 --test-visitors 2300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.Proportions(trial, alpha)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}

	cmd.Flags().IntVar(&trial.Control.Conversions, "control-conversions", 0, "Conversions in the control arm")
	cmd.Flags().IntVar(&trial.Control.Visitors, "control-visitors", 0, "Visitors in the control arm")
	cmd.Flags().IntVar(&trial.Test.Conversions, "test-conversions", 0, "Conversions in the test arm")
	cmd.Flags().IntVar(&trial.Test.Visitors, "test-visitors", 0, "Visitors in the test arm")
	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "Significance level")
	for _, f := range []string{"control-conversions", "control-visitors", "test-conversions", "test-visitors"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newContinuousCmd(svc *app.AnalysisService, cfg *config.Config) *cobra.Command {
	var (
		file          string
		groupColumn   string
		valueColumn   string
		controlLabel  string
		testLabel     string
		controlInline string
		testInline    string
		alpha         float64
	)

	cmd := &cobra.Command{
		Use:   "continuous",
		Short: "Welch's t-test on a continuous metric",
		Long: `Run Welch's t-test between two samples of a continuous metric.

Samples come either from a CSV/XLSX file with a group column and a value
column, or inline as comma-separated values.

Examples:
  abcli continuous --file revenue.csv --group-column variant --value-column revenue
  abcli continuous --control 10,12,11,13,9 --test 15,14,16,13,17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trial, err := loadContinuousTrial(file, groupColumn, valueColumn, controlLabel, testLabel, controlInline, testInline)
			if err != nil {
				return err
			}
			res, err := svc.Continuous(trial, alpha)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&file, "file", cfg.DataFile, "CSV or XLSX file with one observation per row")
	cmd.Flags().StringVar(&groupColumn, "group-column", "variant", "Column naming the arm of each observation")
	cmd.Flags().StringVar(&valueColumn, "value-column", "value", "Column holding the metric")
	cmd.Flags().StringVar(&controlLabel, "control-label", "", "Group label of the control arm (auto-detected when empty)")
	cmd.Flags().StringVar(&testLabel, "test-label", "", "Group label of the test arm (auto-detected when empty)")
	cmd.Flags().StringVar(&controlInline, "control", "", "Inline control values, comma-separated")
	cmd.Flags().StringVar(&testInline, "test", "", "Inline test values, comma-separated")
	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "Significance level")

	return cmd
}

func loadContinuousTrial(file, groupColumn, valueColumn, controlLabel, testLabel, controlInline, testInline string) (experiment.ContinuousTrial, error) {
	if controlInline != "" || testInline != "" {
		control, err := parseValues(controlInline)
		if err != nil {
			return experiment.ContinuousTrial{}, fmt.Errorf("--control: %w", err)
		}
		test, err := parseValues(testInline)
		if err != nil {
			return experiment.ContinuousTrial{}, fmt.Errorf("--test: %w", err)
		}
		return experiment.ContinuousTrial{Control: control, Test: test}, nil
	}

	if file == "" {
		return experiment.ContinuousTrial{}, fmt.Errorf("either --file or --control/--test values are required")
	}
	table, err := tabular.NewReader(file).Read()
	if err != nil {
		return experiment.ContinuousTrial{}, err
	}
	return table.ContinuousTrial(groupColumn, valueColumn, controlLabel, testLabel)
}

func parseValues(raw string) (experiment.ContinuousSample, error) {
	parts := strings.Split(raw, ",")
	sample := make(experiment.ContinuousSample, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not numeric", p)
		}
		sample = append(sample, v)
	}
	return sample, nil
}

func newSampleSizeCmd(svc *app.AnalysisService, cfg *config.Config) *cobra.Command {
	var baseline, mde, alpha, power float64

	cmd := &cobra.Command{
		Use:   "samplesize",
		Short: "Required per-group sample size for a planned experiment",
		Long: `Calculate the per-group sample size needed to detect an absolute rate
change of --mde from a --baseline conversion rate.

Example: abcli samplesize --baseline 0.05 --mde 0.01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.SampleSize(baseline, mde, alpha, power)
			if err != nil {
				return err
			}
			if outputFormat == "json" {
				return printJSON(res)
			}
			fmt.Print(report.RenderSampleSize(res))
			return nil
		},
	}

	cmd.Flags().Float64Var(&baseline, "baseline", 0, "Baseline conversion rate, in (0,1)")
	cmd.Flags().Float64Var(&mde, "mde", 0, "Minimum detectable effect as an absolute rate delta")
	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "Significance level")
	cmd.Flags().Float64Var(&power, "power", cfg.Power, "Statistical power")
	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("mde")

	return cmd
}

func newSweepCmd(sweeper *app.SweepService, cfg *config.Config) *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Analyze every built-in sample experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep, err := sweeper.RunCatalog(cmd.Context(), alpha)
			if err != nil {
				return err
			}
			if outputFormat == "json" {
				return printJSON(sweep)
			}
			for _, entry := range sweep.Entries {
				fmt.Printf("== %s (%s)\n\n", entry.Name, entry.Experiment)
				if err := printResult(entry.Result); err != nil {
					return err
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "Significance level")

	return cmd
}

func newExperimentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "experiments",
		Short: "List the built-in sample experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, exp := range sampledata.Experiments() {
				fmt.Printf("%-24s %-10s %s (%.2f%% vs %.2f%%)\n",
					exp.ID, exp.Status, exp.Name,
					exp.Trial.Control.Rate()*100, exp.Trial.Test.Rate()*100)
			}
			return nil
		},
	}
}

func printResult(res *analysis.Result) error {
	switch outputFormat {
	case "json":
		return printJSON(res)
	case "markdown":
		fmt.Print(report.Markdown(res))
	case "html":
		_, err := os.Stdout.Write(report.HTML(res))
		return err
	default:
		fmt.Print(report.Render(res))
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
