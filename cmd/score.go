package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/export"
	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/sink"
	"github.com/abhisek/maturity/internal/ui/components"
)

// ratingsFile is the input of the score command. JSON is accepted too.
type ratingsFile struct {
	Profile struct {
		Industry string `yaml:"industry"`
		Company  string `yaml:"company"`
		Role     string `yaml:"role"`
	} `yaml:"profile"`
	Ratings map[string]int `yaml:"ratings"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <ratings-file>",
	Short: "Score a ratings file without the interactive survey",
	Long: "Score reads a YAML or JSON file mapping question IDs to ratings (1-5),\n" +
		"with an optional profile block, and prints the results.\n\n" +
		"  profile:\n" +
		"    industry: Retail\n" +
		"    company: Acme\n" +
		"    role: Buyer\n" +
		"  ratings:\n" +
		"    1: 4\n" +
		"    2: 3",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		partial, _ := cmd.Flags().GetBool("partial")
		save, _ := cmd.Flags().GetBool("save")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read ratings: %w", err)
		}
		session, err := scoreRatings(questionbank.Default(), data)
		if err != nil {
			return err
		}

		res := session.Results()
		if res == nil {
			if !partial {
				return fmt.Errorf("%d of %d statements rated (use --partial to score anyway): %w",
					session.AnsweredCount(), session.Bank().Len(), assessment.ErrInvalidInput)
			}
			res = session.Calculate(session.Now())
		}

		if formatName == "table" {
			lipgloss.Println(components.ResultsTable(res))
		} else {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if err := export.Write(os.Stdout, format, res, session.Profile); err != nil {
				return err
			}
		}

		if save {
			return saveScored(cmd, session, res)
		}
		return nil
	},
}

// scoreRatings parses a ratings file and records every rating in a new
// session. Ratings are applied in question ID order.
func scoreRatings(bank *questionbank.Bank, data []byte) (*assessment.Session, error) {
	var f ratingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse ratings: %w", err)
	}
	if len(f.Ratings) == 0 {
		return nil, fmt.Errorf("ratings file has no ratings: %w", assessment.ErrInvalidInput)
	}

	session := assessment.NewSession(bank, assessment.Profile{
		Industry:    f.Profile.Industry,
		CompanyName: f.Profile.Company,
		Role:        f.Profile.Role,
	})

	answers := make([]questionbank.Answer, 0, len(f.Ratings))
	var errs []error
	for key, rating := range f.Ratings {
		id, err := strconv.Atoi(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("question ID %q: %w", key, assessment.ErrInvalidInput))
			continue
		}
		answers = append(answers, questionbank.Answer{QuestionID: id, Rating: rating})
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].QuestionID < answers[j].QuestionID })

	for _, a := range answers {
		if err := session.UpsertAnswer(a); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return session, nil
}

func saveScored(cmd *cobra.Command, session *assessment.Session, res *scoring.Results) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rs, err := buildSink(ctx, st)
	if err != nil {
		return err
	}
	defer sink.Close(rs)

	sub := sink.Submission{SessionID: session.ID, Profile: session.Profile, Results: res}
	saved, err := submitScored(ctx, rs, sub, os.Stderr)
	if saved {
		env.logger.Info("scored results saved", zap.String("session_id", session.ID), zap.String("sink", rs.Name()))
	}
	return err
}

// submitScored makes a single save attempt. A sink that is not configured
// is reported on w and is not an error.
func submitScored(ctx context.Context, rs sink.ResultsSink, sub sink.Submission, w io.Writer) (bool, error) {
	if !rs.Enabled() {
		fmt.Fprintln(w, "Saving is not configured; results were not saved. Set sink.kind in the config file.")
		return false, nil
	}
	if err := rs.Save(ctx, sub); err != nil {
		return false, err
	}
	fmt.Fprintln(w, "Saved to", rs.Name())
	return true, nil
}

func init() {
	scoreCmd.Flags().StringP("format", "f", "table", "Output format: table, csv, json or yaml")
	scoreCmd.Flags().Bool("partial", false, "Score even when some statements are unrated")
	scoreCmd.Flags().Bool("save", false, "Save the results to the configured sink")
}
