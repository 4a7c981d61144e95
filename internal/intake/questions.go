package intake

// Kind describes how a question's answer is encoded.
type Kind int

const (
	// KindNumber is a free numeric entry (age, weight, node counts).
	KindNumber Kind = iota
	// KindSeverity is an ordinal 0-4 (None .. Severe).
	KindSeverity
	// KindBinary is 0/1 (No/Yes).
	KindBinary
)

// Question is one entry in the fixed questionnaire.
type Question struct {
	// Key is the stable identifier used in records and persistence.
	Key string
	// Kind selects the answer encoding.
	Kind Kind
	// HintKey is the translation key for the tooltip/instruction text.
	HintKey string
}

// RequiredCount is the length of the required prefix: the clinical-symptom
// block (demographics + 24 symptom severities) must always be answered.
const RequiredCount = 28

// Unanswered is the sentinel stored for optional questions the user skipped.
const Unanswered = "-"

// SeverityMax is the highest severity ordinal.
const SeverityMax = 4

// Question keys, in questionnaire order. The treatment-history tail
// (Chemotherapy onward) is optional.
const (
	KeyAge           = "Age (years)"
	KeyTimeLapse     = "Time Lapse (years)"
	KeyWeight        = "Weight (Kg)"
	KeyHeight        = "Height (cm)"
	KeyShoulder      = "Limited shoulder movement"
	KeyElbow         = "Limited elbow movement"
	KeyWrist         = "Limited wrist movement"
	KeyFingers       = "Limited fingers movement"
	KeyArm           = "Limited arm movement"
	KeyArmSwelling   = "Arm or hand swelling"
	KeyBreastSwell   = "Breast swelling"
	KeyChestSwell    = "Chest swelling"
	KeySkin          = "Toughness or thickness of skin"
	KeyPAS           = "Pain, aching, soreness"
	KeyTightness     = "Tightness"
	KeyFirmness      = "Firmness"
	KeyHeaviness     = "Heaviness"
	KeyNumbness      = "Numbness"
	KeyBurning       = "Burning"
	KeyStabbing      = "Stabbing"
	KeyTingling      = "Tingling"
	KeyFatigue       = "Fatigue"
	KeyWeakness      = "Weakness"
	KeyRedness       = "Redness"
	KeyHotness       = "Hotness"
	KeyStiffness     = "Stiffness"
	KeyTenderness    = "Tenderness"
	KeyBlister       = "Blister"
	KeyChemotherapy  = "Chemotherapy"
	KeyRadiation     = "Radiation"
	KeySLNBRemoved   = "SLNB_Removed_LN"
	KeyALNDRemoved   = "ALND_Removed_LN"
	KeyMastectomy    = "Mastectomy"
	KeyLumpectomy    = "Lumpectomy"
	KeyHormonal      = "Hormonal therapy"
)

// questions is the fixed, ordered registry. Keys are never added or removed
// at runtime; every Record carries exactly this key set.
var questions = []Question{
	{Key: KeyAge, Kind: KindNumber, HintKey: "hint_age"},
	{Key: KeyTimeLapse, Kind: KindNumber, HintKey: "hint_time_lapse"},
	{Key: KeyWeight, Kind: KindNumber, HintKey: "hint_weight"},
	{Key: KeyHeight, Kind: KindNumber, HintKey: "hint_height"},
	{Key: KeyShoulder, Kind: KindSeverity, HintKey: "hint_shoulder"},
	{Key: KeyElbow, Kind: KindSeverity, HintKey: "hint_elbow"},
	{Key: KeyWrist, Kind: KindSeverity, HintKey: "hint_wrist"},
	{Key: KeyFingers, Kind: KindSeverity, HintKey: "hint_fingers"},
	{Key: KeyArm, Kind: KindSeverity, HintKey: "hint_arm"},
	{Key: KeyArmSwelling, Kind: KindSeverity, HintKey: "hint_arm_swelling"},
	{Key: KeyBreastSwell, Kind: KindSeverity, HintKey: "hint_breast_swelling"},
	{Key: KeyChestSwell, Kind: KindSeverity, HintKey: "hint_chest_swelling"},
	{Key: KeySkin, Kind: KindSeverity, HintKey: "hint_skin"},
	{Key: KeyPAS, Kind: KindSeverity, HintKey: "hint_pas"},
	{Key: KeyTightness, Kind: KindSeverity, HintKey: "hint_tightness"},
	{Key: KeyFirmness, Kind: KindSeverity, HintKey: "hint_firmness"},
	{Key: KeyHeaviness, Kind: KindSeverity, HintKey: "hint_heaviness"},
	{Key: KeyNumbness, Kind: KindSeverity, HintKey: "hint_numbness"},
	{Key: KeyBurning, Kind: KindSeverity, HintKey: "hint_burning"},
	{Key: KeyStabbing, Kind: KindSeverity, HintKey: "hint_stabbing"},
	{Key: KeyTingling, Kind: KindSeverity, HintKey: "hint_tingling"},
	{Key: KeyFatigue, Kind: KindSeverity, HintKey: "hint_fatigue"},
	{Key: KeyWeakness, Kind: KindSeverity, HintKey: "hint_weakness"},
	{Key: KeyRedness, Kind: KindSeverity, HintKey: "hint_redness"},
	{Key: KeyHotness, Kind: KindSeverity, HintKey: "hint_hotness"},
	{Key: KeyStiffness, Kind: KindSeverity, HintKey: "hint_stiffness"},
	{Key: KeyTenderness, Kind: KindSeverity, HintKey: "hint_tenderness"},
	{Key: KeyBlister, Kind: KindSeverity, HintKey: "hint_blister"},
	{Key: KeyChemotherapy, Kind: KindBinary, HintKey: "hint_chemotherapy"},
	{Key: KeyRadiation, Kind: KindBinary, HintKey: "hint_radiation"},
	{Key: KeySLNBRemoved, Kind: KindNumber, HintKey: "hint_slnb"},
	{Key: KeyALNDRemoved, Kind: KindNumber, HintKey: "hint_alnd"},
	{Key: KeyMastectomy, Kind: KindBinary, HintKey: "hint_mastectomy"},
	{Key: KeyLumpectomy, Kind: KindBinary, HintKey: "hint_lumpectomy"},
	{Key: KeyHormonal, Kind: KindBinary, HintKey: "hint_hormonal"},
}

// Questions returns the fixed question registry in questionnaire order.
// The returned slice must not be mutated.
func Questions() []Question {
	return questions
}

// QuestionCount is the total number of questions.
func QuestionCount() int {
	return len(questions)
}

// SeverityLabelKeys returns the translation keys for the five severity
// options, indexed by ordinal.
func SeverityLabelKeys() []string {
	return []string{"None", "A little", "Somewhat", "Quite a bit", "Severe"}
}

// BinaryLabelKeys returns the translation keys for the two binary options,
// indexed by ordinal.
func BinaryLabelKeys() []string {
	return []string{"No", "Yes"}
}
