package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

var testDBCounter int

func openTestStore(t *testing.T) *Store {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", testDBCounter)
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResults(completedAt time.Time, overall int) *scoring.Results {
	return &scoring.Results{
		Competencies: []scoring.CompetencyResult{
			{Name: "Strategic Thinking", Score: overall, MaxScore: 25, Percentage: float64(overall) / 25 * 100},
		},
		OverallScore:     overall,
		MaxPossibleScore: 25,
		CompletedAt:      completedAt,
	}
}

func TestOpenPreparesDatabase(t *testing.T) {
	db := openTestStore(t).DB()

	// journal_mode reports "memory" for in-memory databases, so only the
	// other pragmas are checked.
	for pragma, want := range map[string]string{"foreign_keys": "1", "synchronous": "1", "busy_timeout": "5000"} {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+pragma).Scan(&got), pragma)
		assert.Equal(t, want, got, pragma)
	}

	for _, table := range Tables {
		var n int
		require.NoError(t, db.QueryRow(
			"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table.Name,
		).Scan(&n))
		assert.Equal(t, 1, n, "table %s", table.Name)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/reopen.db"
	first, err := Open(dsn)
	require.NoError(t, err)
	require.NoError(t, first.ResultRepo().Save(context.Background(), &ResultRecord{
		SessionID: "s-keep", Results: sampleResults(time.Now().UTC(), 5),
	}))
	require.NoError(t, first.Close())

	second, err := Open(dsn)
	require.NoError(t, err)
	defer second.Close()

	rec, err := second.ResultRepo().Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "s-keep", rec.SessionID)

	seq, err := second.seq.Next(context.Background())
	require.NoError(t, err)
	assert.Greater(t, seq, rec.Sequence, "sequence continues after reopen")
}

func TestResultSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	rec, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil result when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	saved := &ResultRecord{
		SessionID: "s-1",
		Profile:   assessment.Profile{Industry: "Retail", CompanyName: "Acme, Inc.", Role: "Buyer"},
		Results:   sampleResults(now, 17),
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 || saved.Sequence == 0 {
		t.Errorf("save did not fill ID/Sequence: %+v", saved)
	}

	rec, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil result")
	}
	if rec.SessionID != "s-1" {
		t.Errorf("session = %q, want s-1", rec.SessionID)
	}
	if rec.Profile.CompanyName != "Acme, Inc." {
		t.Errorf("company = %q, want %q", rec.Profile.CompanyName, "Acme, Inc.")
	}
	if rec.Results.OverallScore != 17 || rec.Results.MaxPossibleScore != 25 {
		t.Errorf("overall = %d/%d, want 17/25", rec.Results.OverallScore, rec.Results.MaxPossibleScore)
	}
	if len(rec.Results.Competencies) != 1 || rec.Results.Competencies[0].Score != 17 {
		t.Errorf("competencies = %+v", rec.Results.Competencies)
	}
	if !rec.Results.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v", rec.Results.CompletedAt, now)
	}
}

func TestResultSaveReplacesSameSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	first := &ResultRecord{SessionID: "s-1", Results: sampleResults(now, 10)}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	second := &ResultRecord{SessionID: "s-1", Results: sampleResults(now, 20)}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("ID changed on resave: %d -> %d", first.ID, second.ID)
	}

	all, err := repo.List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(List) = %d, want 1", len(all))
	}
	if all[0].Results.OverallScore != 20 {
		t.Errorf("overall = %d, want 20", all[0].Results.OverallScore)
	}
}

func TestResultListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 4; i++ {
		err := repo.Save(ctx, &ResultRecord{
			SessionID: fmt.Sprintf("s-%d", i),
			Results:   sampleResults(base.Add(time.Duration(i)*time.Minute), i+1),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(got))
	}
	if got[0].SessionID != "s-3" || got[1].SessionID != "s-2" {
		t.Errorf("order = %s, %s; want s-3, s-2", got[0].SessionID, got[1].SessionID)
	}

	rec, err := repo.Get(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.SessionID != "s-2" {
		t.Errorf("Get(%d) = %+v, want s-2", got[1].ID, rec)
	}

	missing, err := repo.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing ID")
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "insights", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "insights", InputTokens: 20, OutputTokens: 15, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "other", Success: false, ErrorMessage: "boom", RequestBody: "[user]\nhi"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ErrorMessage != "boom" || got[0].Success {
		t.Errorf("newest event = %+v", got[0])
	}

	e, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody != "[user]\nhi" {
		t.Errorf("GetLLMEvent = %+v", e)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2", len(usage))
	}
	ins := usage[0]
	if ins.Key != "insights" || ins.Calls != 2 || ins.InputTokens != 30 || ins.OutputTokens != 20 || ins.AvgLatencyMs != 200 {
		t.Errorf("insights usage = %+v", ins)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &ResultRecord{SessionID: "s-1", Results: sampleResults(time.Now().UTC(), 3)}
	require.NoError(t, s.ResultRepo().Save(ctx, rec))
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Purpose: "insights"}))

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, int64(1), rec.Sequence)
	assert.Equal(t, int64(2), events[0].Sequence)

	next, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), next)
}

func TestDefaultDBPath_Env(t *testing.T) {
	dir := t.TempDir()
	want := dir + "/nested/test.db"
	t.Setenv("MATURITY_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}
