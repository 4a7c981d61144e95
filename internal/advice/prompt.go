package advice

import (
	"fmt"
	"strings"

	"github.com/abhisek/lymphwatch/internal/progress"
	"github.com/abhisek/lymphwatch/internal/risk"
)

const adviceSystemPrompt = `You are a supportive assistant for breast cancer survivors monitoring themselves for lymphedema. You write short, calm, practical self-care notes based on a symptom assessment. You never diagnose. For anything concerning, you point the person to their care team.`

func classLabel(c risk.Class) string {
	switch c {
	case risk.ClassLowRisk:
		return "low risk"
	case risk.ClassMild:
		return "mild lymphedema symptoms"
	case risk.ClassModerateSevere:
		return "moderate to severe lymphedema symptoms"
	}
	return "unknown"
}

func verdictLabel(v progress.Verdict) string {
	switch v {
	case progress.VerdictFirstTimeLow:
		return "first assessment, low risk"
	case progress.VerdictFirstTimeElevated:
		return "first assessment, elevated symptoms"
	case progress.VerdictImproved:
		return "improved since last assessment"
	case progress.VerdictImprovedSubstantially:
		return "substantially improved since last assessment"
	case progress.VerdictUnchanged:
		return "unchanged since last assessment"
	case progress.VerdictNeedsAttention:
		return "worse than last assessment"
	}
	return "unknown"
}

func buildAdviceUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Risk class: %s\n", classLabel(input.Class)))
	b.WriteString(fmt.Sprintf("Severity score: %.1f / 100\n", input.Score))
	b.WriteString(fmt.Sprintf("Trend: %s\n", verdictLabel(input.Verdict)))

	if len(input.PreviousScores) > 0 {
		b.WriteString("Previous scores (oldest first):")
		for _, s := range input.PreviousScores {
			b.WriteString(fmt.Sprintf(" %.1f", s))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nReported symptoms and history:\n")
	b.WriteString(fmt.Sprintf("- Arm swelling severity: %.0f of 4\n", input.Vector.ArmSwelling))
	b.WriteString(fmt.Sprintf("- Breast swelling severity: %.0f of 4\n", input.Vector.BreastSwelling))
	b.WriteString(fmt.Sprintf("- Chest wall swelling severity: %.0f of 4\n", input.Vector.ChestWallSwelling))
	b.WriteString(fmt.Sprintf("- Skin change severity: %.0f of 4\n", input.Vector.Skin))
	b.WriteString(fmt.Sprintf("- Pain/aching/soreness severity: %.0f of 4\n", input.Vector.PAS))
	b.WriteString(fmt.Sprintf("- Firmness/heaviness/tightness severity: %.0f of 4\n", input.Vector.FHT))
	b.WriteString(fmt.Sprintf("- Limited mobility severity: %.0f of 4\n", input.Vector.Mobility))
	b.WriteString(fmt.Sprintf("- Symptoms reported: %.0f of 24\n", input.Vector.SymptomCount))
	if input.Vector.Chemotherapy > 0 {
		b.WriteString("- Had chemotherapy\n")
	}
	if input.Vector.Radiation > 0 {
		b.WriteString("- Had radiation therapy\n")
	}
	if input.Vector.NumberNodes > 0 {
		b.WriteString(fmt.Sprintf("- Lymph nodes removed: %.0f\n", input.Vector.NumberNodes))
	}

	b.WriteString(`
Instructions:
Write a short self-care note:
1. Summarize what the assessment shows in 2-3 plain sentences. Be calm and factual. Do not alarm.
2. Give 2-4 concrete self-care recommendations matched to the reported symptoms (for example arm elevation, compression garment wear, gentle range-of-motion exercise, skin care, weight management).
3. Set see_clinician to true if symptoms are elevated or worse than last time.
Never present this as a diagnosis.`)

	return b.String()
}
