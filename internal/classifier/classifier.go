// Package classifier is the boundary to the pretrained 3-class risk
// model. The engine treats the model as opaque: a named subset of the
// feature vector goes in, a probability distribution comes out.
package classifier

import (
	"context"
	"fmt"

	"github.com/abhisek/lymphwatch/internal/features"
	"github.com/abhisek/lymphwatch/internal/risk"
)

// Classifier scores a feature vector into a distribution over the three
// ordered risk classes.
type Classifier interface {
	// Predict returns the class probability distribution for the vector.
	Predict(ctx context.Context, vec features.Vector) (risk.Distribution, error)

	// Manifest describes the loaded model, including which named features
	// it consumes.
	Manifest() Manifest

	// Close releases model resources.
	Close() error
}

// Manifest describes a trained model: identity, score-policy generation,
// and the named feature subset it was trained on.
type Manifest struct {
	// ModelID identifies the trained artifact, e.g. "gbt-2024q3".
	ModelID string `json:"model_id"`
	// ModelPath is the model file location, relative to the manifest.
	ModelPath string `json:"model_path"`
	// Inputs names the consumed features, in model input order. Every
	// name must exist in the full 18-feature vector.
	Inputs []string `json:"inputs"`
	// InputName and OutputName are the ONNX graph tensor names.
	InputName  string `json:"input_name"`
	OutputName string `json:"output_name"`
}

// CanonicalInputs is the 11-feature subset of the current model
// generation.
var CanonicalInputs = []string{
	features.Mobility, features.ArmSwelling, features.BreastSwelling,
	features.Skin, features.FHT, features.Discomfort,
	features.SymptomCount, features.ChestWallSwelling,
	features.Mastectomy, features.Lumpectomy, features.TimeLapse,
}

// LegacyInputs is the 10-feature subset consumed by the earlier model
// generation; kept so archived models remain loadable.
var LegacyInputs = []string{
	features.ArmSwelling, features.BreastSwelling, features.Skin,
	features.Discomfort, features.SymptomCount,
	features.ChestWallSwelling, features.Age, features.Mastectomy,
	features.Hormonal, features.TimeLapse,
}

// Select extracts the named feature subset from the full vector, in
// manifest order, as the float32 row the model consumes.
func Select(vec features.Vector, inputs []string) ([]float32, error) {
	row := make([]float32, len(inputs))
	for i, name := range inputs {
		v, ok := vec.Get(name)
		if !ok {
			return nil, fmt.Errorf("manifest names unknown feature %q", name)
		}
		row[i] = float32(v)
	}
	return row, nil
}
