package risk

// Subscale caps. The raw total across all six subscales therefore tops
// out at 12, which normalization maps onto the 0-10 scale.
const (
	textCap       = 3.0
	tissueCap     = 3.0
	exudateCap    = 2.0
	sizeCap       = 1.0
	chronicityCap = 1.0
	patientCap    = 2.0

	rawMax = textCap + tissueCap + exudateCap + sizeCap + chronicityCap + patientCap
)

// Config holds the weighted vocabularies the calculator scores against.
// It is injected at construction so alternate vocabularies can be
// substituted without touching engine logic, and must not be mutated
// after the calculator is built.
type Config struct {
	// KeywordWeights maps lowercase clinical risk phrases to severity
	// weights. Matching is case-insensitive substring search; each
	// keyword counts at most once.
	KeywordWeights map[string]float64

	// FactorWeights maps patient comorbidity flags to their weights.
	FactorWeights map[string]float64

	// ExudateBase maps lowercase exudate levels to their base score.
	ExudateBase map[string]float64

	// UnknownExudate is the neutral base score for unrecognized
	// exudate levels.
	UnknownExudate float64
}

// DefaultConfig returns the standard clinical vocabulary and weights.
func DefaultConfig() Config {
	return Config{
		KeywordWeights: map[string]float64{
			"purulent":        2.0,
			"pus":             2.0,
			"foul odor":       1.8,
			"malodorous":      1.8,
			"necrotic":        1.5,
			"black eschar":    1.5,
			"fever":           1.2,
			"warmth":          1.0,
			"erythema":        1.0,
			"swelling":        0.8,
			"friable":         0.7,
			"pain":            0.6,
			"bleeding":        0.6,
			"slough":          0.5,
			"delayed healing": 0.5,
		},
		FactorWeights: map[string]float64{
			"diabetes":           0.6,
			"immunosuppressed":   0.8,
			"poor_circulation":   0.5,
			"smoking":            0.3,
			"malnutrition":       0.4,
			"incontinence":       0.3,
			"recent_antibiotics": 0.2,
		},
		ExudateBase: map[string]float64{
			"none":     0.0,
			"light":    0.3,
			"moderate": 0.8,
			"heavy":    1.5,
		},
		UnknownExudate: 0.5,
	}
}
