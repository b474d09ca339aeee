package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/maturity/internal/llm"
	"github.com/abhisek/maturity/internal/store"
	"github.com/abhisek/maturity/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded insight requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		rows := eventRows(events, purpose)
		if len(rows) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}
		lipgloss.Println(plainTable([]string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"}, rows))
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		fmt.Print(describeEvent(e))
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		fmt.Println("Usage by purpose")
		lipgloss.Println(plainTable([]string{"Purpose", "Calls", "Input", "Output", "Avg Ms"}, usageRows(byPurpose)))

		rows, unknown := costRows(byModel)
		fmt.Println("Estimated cost (USD)")
		lipgloss.Println(plainTable([]string{"Model", "Calls", "Input", "Output", "Cost"}, rows))
		if len(unknown) > 0 {
			fmt.Printf("Pricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

// eventRows formats events as table rows, keeping only those matching
// purpose when it is set.
func eventRows(events []store.LLMEvent, purpose string) [][]string {
	var rows [][]string
	for _, e := range events {
		if purpose != "" && e.Purpose != purpose {
			continue
		}
		ok := "yes"
		if !e.Success {
			ok = "no"
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
		})
	}
	return rows
}

func usageRows(stats []store.LLMUsage) [][]string {
	rows := make([][]string, 0, len(stats)+1)
	var calls, in, out int
	for _, st := range stats {
		rows = append(rows, []string{
			st.Key,
			strconv.Itoa(st.Calls),
			strconv.Itoa(st.InputTokens),
			strconv.Itoa(st.OutputTokens),
			strconv.FormatInt(st.AvgLatencyMs, 10),
		})
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	return append(rows, []string{"TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), ""})
}

// costRows prices each model's usage. Models without known pricing are
// shown with a "?" and returned separately; the total then only covers
// priced models.
func costRows(stats []store.LLMUsage) ([][]string, []string) {
	rows := make([][]string, 0, len(stats)+1)
	var unknown []string
	var total float64
	for _, mu := range stats {
		cost := "?"
		if price := llm.LookupCost(mu.Key); price != nil {
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unknown = append(unknown, mu.Key)
		}
		rows = append(rows, []string{
			truncate(mu.Key, 32),
			strconv.Itoa(mu.Calls),
			strconv.Itoa(mu.InputTokens),
			strconv.Itoa(mu.OutputTokens),
			cost,
		})
	}
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	return append(rows, []string{label, "", "", "", formatCost(total)}), unknown
}

func describeEvent(e *store.LLMEvent) string {
	var b strings.Builder
	field := func(name, value string) {
		fmt.Fprintf(&b, "%-10s %s\n", name+":", value)
	}
	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.ErrorMessage != "" {
		field("Error", e.ErrorMessage)
	}

	section := func(title, body string) {
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(&b, "\n== %s ==\n%s\n", title, body)
	}
	section("Request", e.RequestBody)
	section("Response", e.ResponseBody)
	return b.String()
}

// plainTable renders rows with the header row highlighted and the last
// column right-aligned.
func plainTable(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Foreground(theme.Primary).Bold(true)
			}
			if col == len(headers)-1 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		}).
		String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. insights)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
