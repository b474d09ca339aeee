package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/config"
	"github.com/abhisek/maturity/internal/logging"
	"github.com/abhisek/maturity/internal/store"
)

// env holds what PersistentPreRunE prepared for the running command.
var env struct {
	cfg    *config.Config
	logger *zap.Logger
}

var rootCmd = &cobra.Command{
	Use:   "maturity",
	Short: "Competency self-assessment in the terminal",
	Long: "Maturity: rate yourself on leadership, strategy, technical and operational\n" +
		"competencies, see where you stand, and export or save the results.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if env.logger != nil {
			_ = env.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command until it finishes or ctx is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATURITY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATURITY_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
	rootCmd.Flags().Bool("no-welcome", false, "Skip the welcome animation")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Database.Path = p
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	env.cfg = cfg
	env.logger = logger.With(zap.String("command", cmd.Name()))
	env.logger.Debug("config loaded", zap.String("path", path), zap.String("sink", cfg.Sink.Kind))
	return nil
}

// resolveDBPath returns the database path using --db or the config file
// (highest priority), then MATURITY_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := env.cfg.Database.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the local SQLite history.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	env.logger.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}
