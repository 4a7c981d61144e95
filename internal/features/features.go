// Package features maps a validated questionnaire record to the numeric
// feature vector consumed by the risk classifier.
package features

// Canonical feature names, in vector order. These are the wire names the
// trained models were exported with; classifier manifests reference them.
const (
	BMI               = "BMI"
	Age               = "Age"
	TimeLapse         = "TIME_LAPSE"
	Mobility          = "Mobility"
	ArmSwelling       = "ArmSwelling"
	BreastSwelling    = "BreastSwelling"
	Skin              = "Skin"
	PAS               = "PAS"
	FHT               = "FHT"
	Discomfort        = "DISCOMFORT"
	SymptomCount      = "SYM_COUNT"
	ChestWallSwelling = "ChestWallSwelling"
	Chemotherapy      = "Chemotherapy"
	Radiation         = "Radiation"
	NumberNodes       = "Number_nodes"
	Mastectomy        = "Mastectomy"
	Lumpectomy        = "Lumpectomy"
	Hormonal          = "Hormonal"
)

// names lists all features in vector order.
var names = []string{
	BMI, Age, TimeLapse, Mobility, ArmSwelling, BreastSwelling, Skin,
	PAS, FHT, Discomfort, SymptomCount, ChestWallSwelling, Chemotherapy,
	Radiation, NumberNodes, Mastectomy, Lumpectomy, Hormonal,
}

// Names returns the ordered feature names. The slice must not be mutated.
func Names() []string {
	return names
}

// Count is the dimensionality of the full feature vector.
const Count = 18

// SymptomCountMax is the largest possible SYM_COUNT value (one per
// counted symptom).
const SymptomCountMax = 24

// Vector is the ordered 18-feature input to the classifier.
type Vector struct {
	BMI               float64
	Age               float64
	TimeLapse         float64
	Mobility          float64
	ArmSwelling       float64
	BreastSwelling    float64
	Skin              float64
	PAS               float64
	FHT               float64
	Discomfort        float64
	SymptomCount      float64
	ChestWallSwelling float64
	Chemotherapy      float64
	Radiation         float64
	NumberNodes       float64
	Mastectomy        float64
	Lumpectomy        float64
	Hormonal          float64
}

// Get returns the named feature value, and whether the name is known.
func (v Vector) Get(name string) (float64, bool) {
	switch name {
	case BMI:
		return v.BMI, true
	case Age:
		return v.Age, true
	case TimeLapse:
		return v.TimeLapse, true
	case Mobility:
		return v.Mobility, true
	case ArmSwelling:
		return v.ArmSwelling, true
	case BreastSwelling:
		return v.BreastSwelling, true
	case Skin:
		return v.Skin, true
	case PAS:
		return v.PAS, true
	case FHT:
		return v.FHT, true
	case Discomfort:
		return v.Discomfort, true
	case SymptomCount:
		return v.SymptomCount, true
	case ChestWallSwelling:
		return v.ChestWallSwelling, true
	case Chemotherapy:
		return v.Chemotherapy, true
	case Radiation:
		return v.Radiation, true
	case NumberNodes:
		return v.NumberNodes, true
	case Mastectomy:
		return v.Mastectomy, true
	case Lumpectomy:
		return v.Lumpectomy, true
	case Hormonal:
		return v.Hormonal, true
	}
	return 0, false
}

// Values returns the vector in canonical order.
func (v Vector) Values() []float64 {
	return []float64{
		v.BMI, v.Age, v.TimeLapse, v.Mobility, v.ArmSwelling,
		v.BreastSwelling, v.Skin, v.PAS, v.FHT, v.Discomfort,
		v.SymptomCount, v.ChestWallSwelling, v.Chemotherapy,
		v.Radiation, v.NumberNodes, v.Mastectomy, v.Lumpectomy,
		v.Hormonal,
	}
}
