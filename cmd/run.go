package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lymphwatch/internal/advice"
	"github.com/abhisek/lymphwatch/internal/app"
	"github.com/abhisek/lymphwatch/internal/classifier"
	"github.com/abhisek/lymphwatch/internal/config"
	"github.com/abhisek/lymphwatch/internal/i18n"
	"github.com/abhisek/lymphwatch/internal/llm"
	"github.com/abhisek/lymphwatch/internal/logging"
	"github.com/abhisek/lymphwatch/internal/risk"
	"github.com/abhisek/lymphwatch/internal/session"
	"github.com/abhisek/lymphwatch/internal/store"
	"github.com/abhisek/lymphwatch/internal/ui/state"
)

// runApp loads configuration, opens the store, builds the scoring
// pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfgPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logCfg := logging.DefaultConfig(store.DataDir(dbPath))
	logCfg.Level = cfg.LogLevel
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	clf, err := newClassifier(cfg)
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}
	defer clf.Close()

	calc, err := risk.NewCalculator(cfg.Policy)
	if err != nil {
		return fmt.Errorf("build calculator: %w", err)
	}

	loc, err := i18n.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("load language %q: %w", cfg.Language, err)
	}

	orch := session.New(clf, calc, st.Records(), logger)

	var advisor *advice.Service
	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		// No explicit provider config; probe the standard key vars.
		if discovered, ok := llm.DiscoverConfig(); ok {
			llmCfg = discovered
		} else {
			llmCfg.Provider = ""
		}
	}
	if llmCfg.Provider != "" {
		provider, err := llm.NewProvider(ctx, llmCfg, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Personalized suggestions will be unavailable.")
			logger.Info("llm provider unavailable", zap.Error(err))
		} else {
			advisor = advice.NewService(provider, advice.DefaultConfig())
		}
	}

	return app.Run(app.Options{
		Store:        st,
		Orchestrator: orch,
		Advisor:      advisor,
		State:        state.New(cfg, cfgPath, loc),
		Logger:       logger,
	})
}

// newClassifier builds the configured classifier backend. The mock
// heuristic keeps the app usable before a model manifest is installed.
func newClassifier(cfg config.Config) (classifier.Classifier, error) {
	switch cfg.Classifier {
	case "onnx":
		return classifier.NewONNXClassifier(classifier.ONNXConfig{
			ManifestPath: cfg.ManifestPath,
			LibraryPath:  cfg.OrtLibraryPath,
		})
	case "mock", "":
		return classifier.NewMockClassifier(), nil
	}
	return nil, fmt.Errorf("unknown classifier backend %q", cfg.Classifier)
}
