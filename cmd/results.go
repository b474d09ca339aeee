package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/export"
	"github.com/abhisek/maturity/internal/insights"
	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/store"
	"github.com/abhisek/maturity/internal/ui/components"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect and export saved assessment results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ResultRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No saved results yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-24s  %-24s  %7s  %s\n",
			"ID", "Saved", "Company", "Role", "Score", "Avg")
		fmt.Println(strings.Repeat("─", 92))
		for _, r := range recs {
			score, avg := "-", "-"
			if r.Results != nil {
				score = fmt.Sprintf("%d/%d", r.Results.OverallScore, r.Results.MaxPossibleScore)
				avg = scoring.FormatAverage(r.Results.OverallAverage())
			}
			fmt.Printf("%-5d  %-16s  %-24s  %-24s  %7s  %s\n",
				r.ID,
				r.SavedAt.Local().Format("2006-01-02 15:04"),
				truncate(r.Profile.CompanyName, 24),
				truncate(r.Profile.Role, 24),
				score,
				avg,
			)
		}
		return nil
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the breakdown of a saved result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadResult(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Result %d  ·  %s\n", rec.ID, rec.SavedAt.Local().Format("Jan 02, 2006 15:04"))
		if !rec.Profile.IsZero() {
			fmt.Printf("%s, %s (%s)\n", rec.Profile.Role, rec.Profile.CompanyName, rec.Profile.Industry)
		}
		fmt.Println()
		lipgloss.Println(components.ResultsTable(rec.Results))

		if chart, _ := cmd.Flags().GetBool("chart"); chart {
			fmt.Println()
			lipgloss.Println(radarFor(rec).View())
		}
		return nil
	},
}

var resultsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved result as CSV, JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("output")

		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}

		rec, err := loadResult(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			return export.Write(os.Stdout, format, rec.Results, rec.Profile)
		}
		if err := writeFile(out, func(w io.Writer) error {
			return export.Write(w, format, rec.Results, rec.Profile)
		}); err != nil {
			return err
		}
		env.logger.Info("result exported", zap.Int("id", rec.ID), zap.String("path", out))
		fmt.Fprintln(os.Stderr, "Exported to", out)
		return nil
	},
}

var resultsPlanCmd = &cobra.Command{
	Use:   "plan <id>",
	Short: "Generate an AI development plan for a saved result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := getResult(ctx, s.ResultRepo(), args[0])
		if err != nil {
			return err
		}

		svc := buildInsights(ctx, s.EventRepo())
		if !svc.Enabled() {
			return insights.ErrDisabled
		}

		fmt.Fprintln(os.Stderr, "Generating development plan...")
		plan, err := svc.Generate(ctx, insights.Input{Profile: rec.Profile, Results: rec.Results})
		if err != nil {
			return err
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Print(plan.Markdown())
			return nil
		}
		fmt.Print(components.Markdown(plan.Markdown(), 80))
		return nil
	},
}

// loadResult opens the store and fetches one record by its ID argument.
func loadResult(ctx context.Context, arg string) (*store.ResultRecord, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return getResult(ctx, s.ResultRepo(), arg)
}

func getResult(ctx context.Context, repo store.ResultRepo, arg string) (*store.ResultRecord, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid ID %q: %w", arg, err)
	}
	rec, err := repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	if rec == nil || rec.Results == nil {
		return nil, fmt.Errorf("result %d not found", id)
	}
	return rec, nil
}

func radarFor(rec *store.ResultRecord) components.Radar {
	r := components.Radar{Max: 5, Radius: 8}
	for _, c := range rec.Results.Competencies {
		r.Axes = append(r.Axes, components.RadarAxis{Label: c.Name.ShortName(), Value: c.Average()})
	}
	return r
}

// writeFile creates path and hands it to fn, reporting the first error.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return fn(f)
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsShowCmd.Flags().Bool("chart", false, "Also draw the radar chart")
	resultsExportCmd.Flags().StringP("format", "f", "csv", "Export format: csv, json or yaml")
	resultsExportCmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")
	resultsPlanCmd.Flags().Bool("raw", false, "Print the plan as plain markdown")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
	resultsCmd.AddCommand(resultsExportCmd)
	resultsCmd.AddCommand(resultsPlanCmd)
}
