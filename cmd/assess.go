package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lymphwatch/internal/config"
	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/intake"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// assessOutput is the JSON printed by the assess command.
type assessOutput struct {
	Distribution [3]float64 `json:"distribution"`
	Class        string     `json:"class"`
	Score        float64    `json:"score"`
	Policy       string     `json:"policy"`
}

var assessCmd = &cobra.Command{
	Use:   "assess [answers.json]",
	Short: "Score a symptom report non-interactively",
	Long: "Reads a flat question→answer JSON object (the same shape the app persists), " +
		"runs validation, encoding, and classification, and prints the risk result as JSON. " +
		"Nothing is stored.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		data, err := readAnswers(args)
		if err != nil {
			return err
		}

		rec := intake.NewRecord()
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}
		if err := intake.Validate(rec); err != nil {
			return err
		}

		vec, err := features.Encode(rec)
		if err != nil {
			return err
		}

		clf, err := newClassifier(cfg)
		if err != nil {
			return fmt.Errorf("load classifier: %w", err)
		}
		defer clf.Close()

		dist, err := clf.Predict(cmd.Context(), vec)
		if err != nil {
			return err
		}

		calc, err := risk.NewCalculator(cfg.Policy)
		if err != nil {
			return err
		}
		score, err := calc.Score(dist)
		if err != nil {
			return err
		}

		out := assessOutput{
			Distribution: [3]float64(dist),
			Class:        dist.Dominant().MessageKey(),
			Score:        score,
			Policy:       string(calc.Policy()),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// readAnswers loads the answers file, or stdin when no path is given.
func readAnswers(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
