package features

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abhisek/lymphwatch/internal/intake"
)

// DomainError reports a numeric answer outside its mathematical domain,
// e.g. a non-positive time lapse fed to a logarithm. Recoverable: the
// caller returns the user to the form.
type DomainError struct {
	Field string
	Value string
	Err   error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field %q: value %q out of domain: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("field %q: value %q out of domain", e.Field, e.Value)
}

func (e *DomainError) Unwrap() error { return e.Err }

// symptomKeys are the 24 questions counted into SYM_COUNT, in
// questionnaire order.
var symptomKeys = []string{
	intake.KeyShoulder, intake.KeyElbow, intake.KeyWrist, intake.KeyFingers,
	intake.KeyArm, intake.KeyArmSwelling, intake.KeyBreastSwell,
	intake.KeyChestSwell, intake.KeySkin, intake.KeyPAS, intake.KeyTightness,
	intake.KeyFirmness, intake.KeyHeaviness, intake.KeyNumbness,
	intake.KeyBurning, intake.KeyStabbing, intake.KeyTingling,
	intake.KeyFatigue, intake.KeyWeakness, intake.KeyRedness,
	intake.KeyHotness, intake.KeyStiffness, intake.KeyTenderness,
	intake.KeyBlister,
}

// Encode derives the feature vector from a validated record. It is pure
// and deterministic: the same record always yields the bit-identical
// vector. Validation (intake.Validate) is a precondition; answers that
// still fail to parse here surface as DomainError.
func Encode(rec *intake.Record) (Vector, error) {
	var v Vector
	var err error

	weight, err := number(rec, intake.KeyWeight)
	if err != nil {
		return Vector{}, err
	}
	heightCm, err := number(rec, intake.KeyHeight)
	if err != nil {
		return Vector{}, err
	}
	if heightCm <= 0 {
		return Vector{}, &DomainError{Field: intake.KeyHeight, Value: rec.Get(intake.KeyHeight)}
	}
	if weight <= 0 {
		return Vector{}, &DomainError{Field: intake.KeyWeight, Value: rec.Get(intake.KeyWeight)}
	}
	heightM := heightCm / 100
	v.BMI = weight / (heightM * heightM)

	if v.Age, err = number(rec, intake.KeyAge); err != nil {
		return Vector{}, err
	}

	lapse, err := number(rec, intake.KeyTimeLapse)
	if err != nil {
		return Vector{}, err
	}
	if lapse <= 0 {
		return Vector{}, &DomainError{Field: intake.KeyTimeLapse, Value: rec.Get(intake.KeyTimeLapse)}
	}
	v.TimeLapse = math.Log(lapse)

	mob, err := maxOrdinal(rec, intake.KeyShoulder, intake.KeyElbow,
		intake.KeyWrist, intake.KeyFingers, intake.KeyArm)
	if err != nil {
		return Vector{}, err
	}
	v.Mobility = mob

	if v.ArmSwelling, err = number(rec, intake.KeyArmSwelling); err != nil {
		return Vector{}, err
	}
	if v.BreastSwelling, err = number(rec, intake.KeyBreastSwell); err != nil {
		return Vector{}, err
	}
	if v.Skin, err = number(rec, intake.KeySkin); err != nil {
		return Vector{}, err
	}
	if v.PAS, err = number(rec, intake.KeyPAS); err != nil {
		return Vector{}, err
	}

	fht, err := maxOrdinal(rec, intake.KeyFirmness, intake.KeyHeaviness, intake.KeyTightness)
	if err != nil {
		return Vector{}, err
	}
	v.FHT = fht

	// The model was trained with the pain/ache/soreness answer feeding
	// both PAS and DISCOMFORT. The duplication is part of the trained
	// feature contract, not a transcription slip.
	v.Discomfort = v.PAS

	count := 0.0
	for _, key := range symptomKeys {
		present, err := number(rec, key)
		if err != nil {
			return Vector{}, err
		}
		if present != 0 {
			count++
		}
	}
	v.SymptomCount = count

	if v.ChestWallSwelling, err = number(rec, intake.KeyChestSwell); err != nil {
		return Vector{}, err
	}

	if v.Chemotherapy, err = optionalNumber(rec, intake.KeyChemotherapy); err != nil {
		return Vector{}, err
	}
	if v.Radiation, err = optionalNumber(rec, intake.KeyRadiation); err != nil {
		return Vector{}, err
	}

	slnb, err := optionalNumber(rec, intake.KeySLNBRemoved)
	if err != nil {
		return Vector{}, err
	}
	alnd, err := optionalNumber(rec, intake.KeyALNDRemoved)
	if err != nil {
		return Vector{}, err
	}
	v.NumberNodes = slnb + alnd

	if v.Mastectomy, err = optionalNumber(rec, intake.KeyMastectomy); err != nil {
		return Vector{}, err
	}
	if v.Lumpectomy, err = optionalNumber(rec, intake.KeyLumpectomy); err != nil {
		return Vector{}, err
	}
	if v.Hormonal, err = optionalNumber(rec, intake.KeyHormonal); err != nil {
		return Vector{}, err
	}

	return v, nil
}

// number parses a required numeric answer.
func number(rec *intake.Record, key string) (float64, error) {
	raw := rec.Get(key)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &DomainError{Field: key, Value: raw, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &DomainError{Field: key, Value: raw}
	}
	return f, nil
}

// optionalNumber parses an optional answer, normalizing the unanswered
// sentinel to 0.
func optionalNumber(rec *intake.Record, key string) (float64, error) {
	if rec.Get(key) == intake.Unanswered {
		return 0, nil
	}
	return number(rec, key)
}

// maxOrdinal returns the most severe of the given ordinal answers.
func maxOrdinal(rec *intake.Record, keys ...string) (float64, error) {
	best := 0.0
	for _, key := range keys {
		f, err := number(rec, key)
		if err != nil {
			return 0, err
		}
		if f > best {
			best = f
		}
	}
	return best, nil
}
