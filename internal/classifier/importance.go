package classifier

import "github.com/abhisek/lymphwatch/internal/features"

// Importance is one entry of the model's feature-importance table.
type Importance struct {
	// Feature is the canonical feature name.
	Feature string
	// LabelKey is the translation key for the user-facing label.
	LabelKey string
	// Weight is the trained model's importance, summing to ~1 across
	// the table.
	Weight float64
}

// importances is the trained GBT model's feature-importance table,
// descending. Static per model generation; refreshed when a model is
// retrained.
var importances = []Importance{
	{features.ArmSwelling, "Arm or hand swelling", 0.5666504441537034},
	{features.SymptomCount, "Symptom severity", 0.32829106757634513},
	{features.BreastSwelling, "Breast swelling", 0.05866949630997336},
	{features.TimeLapse, "time lapse since last surgery", 0.0270874570016606},
	{features.BMI, "Height and weight (BMI)", 0.0048442873079247665},
	{features.FHT, "Tightness, firmness, and heaviness", 0.003799860520333767},
	{features.Age, "Age", 0.0036176355797100405},
	{features.NumberNodes, "Number of removed nodes", 0.0027917973843724414},
	{features.Skin, "Toughness of skin", 0.0018357913101027619},
	{features.Discomfort, "Discomfort", 0.0009075648872365948},
	{features.PAS, "Pain, aching and soreness", 0.0007936402703285446},
	{features.Hormonal, "Hormonal", 0.00019944254371048652},
	{features.Radiation, "Radiation", 0.00017741997766747576},
	{features.Mobility, "Limited Mobility", 0.000173412474200293},
	{features.ChestWallSwelling, "ChestWall swelling", 0.0001060488637141992},
	{features.Lumpectomy, "Lumpectomy", 2.9960955692536147e-05},
	{features.Chemotherapy, "Chemotherapy", 1.3416562172188665e-05},
	{features.Mastectomy, "Mastectomy", 1.1256321151464536e-05},
}

// Importances returns the feature-importance table, most important first.
// The slice must not be mutated.
func Importances() []Importance {
	return importances
}
