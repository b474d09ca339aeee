package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/app"
	"github.com/abhisek/maturity/internal/insights"
	"github.com/abhisek/maturity/internal/llm"
	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/sink"
	"github.com/abhisek/maturity/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	svc := screen.Services{
		Bank:         questionbank.Default(),
		Results:      st.ResultRepo(),
		Sink:         rs,
		Insights:     buildInsights(ctx, st.EventRepo()),
		Logger:       env.logger,
		ExportDir:    env.cfg.Export.Dir,
		ExportFormat: env.cfg.ExportFormat(),
	}

	skip, _ := cmd.Flags().GetBool("no-welcome")
	env.logger.Info("starting tui", zap.String("sink", rs.Name()), zap.Bool("insights", svc.Insights.Enabled()))
	return app.Run(ctx, app.Options{Services: svc, SkipWelcome: skip})
}

// buildSink creates the configured results sink.
func buildSink(ctx context.Context, st *store.Store) (sink.ResultsSink, error) {
	rs, err := sink.FromConfig(ctx, env.cfg.Sink, st.ResultRepo(), env.logger)
	if err != nil {
		return nil, fmt.Errorf("configure results sink: %w", err)
	}
	return rs, nil
}

// buildInsights creates the plan service. It is inert when no LLM
// provider is configured.
func buildInsights(ctx context.Context, events store.EventRepo) *insights.Service {
	var provider llm.Provider
	if env.cfg.LLM.Enabled() {
		p, err := llm.NewProvider(ctx, env.cfg.LLM, events, env.logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI insights will be unavailable.")
			env.logger.Warn("llm provider unavailable", zap.Error(err))
		} else {
			provider = p
		}
	}
	return insights.NewService(provider, env.cfg.Insights, env.logger)
}
