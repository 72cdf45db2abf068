// Package risk implements the infection risk scoring engine: six
// independently capped subscales over clinical text, tissue composition,
// exudate, wound size, chronicity, and patient factors, reduced to a
// single 0-10 score with a banded interpretation.
//
// Scoring is a deterministic pure function of its inputs. A Calculator
// is read-only after construction and safe for concurrent use.
package risk

// TissueComposition holds per-category tissue percentages (0-100) for a
// wound bed, typically estimated by an upstream vision model. Missing
// categories are simply zero; the percentages are not required to sum
// to 100.
type TissueComposition struct {
	GranulationPct float64 `json:"granulation_pct"`
	EpithelialPct  float64 `json:"epithelial_pct"`
	SloughPct      float64 `json:"slough_pct"`
	NecroticPct    float64 `json:"necrotic_pct"`
	EscharPct      float64 `json:"eschar_pct"`
}

// Factors is the complete input to a risk calculation.
type Factors struct {
	// ClinicalText is free-text clinical notes; may be empty.
	ClinicalText string
	// Tissue is the wound bed tissue composition.
	Tissue TissueComposition
	// WoundAreaCm2 is the measured wound area, >= 0.
	WoundAreaCm2 float64
	// ExudateLevel is one of "none", "light", "moderate", "heavy"
	// (case-insensitive). Unrecognized levels score a neutral default.
	ExudateLevel string
	// DaysSinceOnset is the wound age in days; nil when unknown.
	DaysSinceOnset *int
	// PatientFactors flags comorbidities by name (diabetes,
	// immunosuppressed, poor_circulation, smoking, malnutrition,
	// incontinence, recent_antibiotics). Nil contributes nothing.
	PatientFactors map[string]bool
}

// Level is the banded infection risk classification.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelHigh
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelModerate:
		return "Moderate"
	case LevelHigh:
		return "High"
	case LevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// levelFor maps a normalized 0-10 score to its risk band. Boundaries are
// half-open: a score of exactly 2.5 is Moderate, not Low.
func levelFor(score float64) Level {
	switch {
	case score < 2.5:
		return LevelLow
	case score < 5.0:
		return LevelModerate
	case score < 7.5:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Subscores holds the six capped subscale values.
type Subscores struct {
	ClinicalIndicators float64 `json:"clinical_indicators"` // cap 3.0
	TissueComposition  float64 `json:"tissue_composition"`  // cap 3.0
	Exudate            float64 `json:"exudate"`             // cap 2.0
	WoundSize          float64 `json:"wound_size"`          // cap 1.0
	Chronicity         float64 `json:"chronicity"`          // cap 1.0
	PatientFactors     float64 `json:"patient_factors"`     // cap 2.0
}

// Result is the outcome of a risk calculation.
type Result struct {
	TotalScore     float64   `json:"total_score"` // 0-10, one decimal
	Level          Level     `json:"risk_level"`
	Subscores      Subscores `json:"subscores"`
	Interpretation string    `json:"interpretation"`
}
