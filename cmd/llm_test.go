package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/maturity/internal/store"
)

func TestEventRows_FiltersByPurpose(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	events := []store.LLMEvent{
		{ID: 2, Timestamp: ts, LLMRequestEventData: store.LLMRequestEventData{
			Model: "gpt-4o-mini", Purpose: "insights", InputTokens: 40, OutputTokens: 25, LatencyMs: 812, Success: true,
		}},
		{ID: 1, Timestamp: ts, LLMRequestEventData: store.LLMRequestEventData{
			Model: "mock", Purpose: "other", Success: false,
		}},
	}

	rows := eventRows(events, "")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2", "2026-03-01 09:30:00", "insights", "gpt-4o-mini", "40", "25", "812", "yes"}, rows[0])
	assert.Equal(t, "no", rows[1][7])

	rows = eventRows(events, "other")
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0][0])

	assert.Empty(t, eventRows(events, "missing"))
}

func TestUsageRows_Totals(t *testing.T) {
	rows := usageRows([]store.LLMUsage{
		{Key: "insights", Calls: 2, InputTokens: 30, OutputTokens: 20, AvgLatencyMs: 200},
		{Key: "other", Calls: 1, InputTokens: 5, OutputTokens: 1, AvgLatencyMs: 50},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"TOTAL", "3", "35", "21", ""}, rows[2])
}

func TestCostRows(t *testing.T) {
	rows, unknown := costRows([]store.LLMUsage{
		{Key: "gpt-4o-mini", Calls: 1, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Key: "local-llama", Calls: 4, InputTokens: 10, OutputTokens: 10},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, "$0.75", rows[0][4])
	assert.Equal(t, "?", rows[1][4])
	assert.Equal(t, []string{"local-llama"}, unknown)
	assert.Equal(t, []string{"TOTAL (partial)", "", "", "", "$0.75"}, rows[2])

	rows, unknown = costRows([]store.LLMUsage{{Key: "openai/gpt-4o-mini", Calls: 1, InputTokens: 100, OutputTokens: 100}})
	assert.Empty(t, unknown)
	assert.Equal(t, "TOTAL", rows[len(rows)-1][0])
	assert.Equal(t, "$0.0001", rows[0][4])
}

func TestDescribeEvent(t *testing.T) {
	e := &store.LLMEvent{ID: 7, LLMRequestEventData: store.LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "insights", ErrorMessage: "boom", RequestBody: "[user]\nhi",
	}}
	out := describeEvent(e)
	assert.Contains(t, out, "ID:        7")
	assert.Contains(t, out, "Error:     boom")
	assert.Contains(t, out, "== Request ==\n[user]\nhi")
	assert.Contains(t, out, "== Response ==\n(not captured)")
}
