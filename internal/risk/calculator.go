package risk

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput reports risk factors outside their documented ranges.
// Unrecognized exudate levels and missing optional fields are handled by
// documented fallbacks and are not errors.
var ErrInvalidInput = errors.New("invalid risk input")

// Calculator computes infection risk scores against an injected
// vocabulary Config.
type Calculator struct {
	cfg Config
}

// NewCalculator returns a Calculator scoring against cfg.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate scores the given factors. The result is deterministic:
// identical inputs always produce identical results.
func (c *Calculator) Calculate(f Factors) (*Result, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	sub := Subscores{
		ClinicalIndicators: round2(c.textScore(f.ClinicalText)),
		TissueComposition:  round2(tissueScore(f.Tissue)),
		Exudate:            round2(c.exudateScore(f.ExudateLevel, f.Tissue)),
		WoundSize:          round2(sizeScore(f.WoundAreaCm2)),
		Chronicity:         round2(chronicityScore(f.DaysSinceOnset)),
		PatientFactors:     round2(c.patientScore(f.PatientFactors)),
	}

	raw := sub.ClinicalIndicators + sub.TissueComposition + sub.Exudate +
		sub.WoundSize + sub.Chronicity + sub.PatientFactors

	total := math.Min(round1(raw/rawMax*10), 10.0)

	return &Result{
		TotalScore:     total,
		Level:          levelFor(total),
		Subscores:      sub,
		Interpretation: interpret(total, f.Tissue),
	}, nil
}

func validate(f Factors) error {
	for name, pct := range map[string]float64{
		"granulation": f.Tissue.GranulationPct,
		"epithelial":  f.Tissue.EpithelialPct,
		"slough":      f.Tissue.SloughPct,
		"necrotic":    f.Tissue.NecroticPct,
		"eschar":      f.Tissue.EscharPct,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: %s percentage %.1f outside 0-100", ErrInvalidInput, name, pct)
		}
	}
	if f.WoundAreaCm2 < 0 {
		return fmt.Errorf("%w: negative wound area %.2f", ErrInvalidInput, f.WoundAreaCm2)
	}
	if f.DaysSinceOnset != nil && *f.DaysSinceOnset < 0 {
		return fmt.Errorf("%w: negative days since onset %d", ErrInvalidInput, *f.DaysSinceOnset)
	}
	return nil
}

// textScore sums severity weights for matched clinical keywords.
// Multiple occurrences of the same keyword count once.
func (c *Calculator) textScore(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for keyword, weight := range c.cfg.KeywordWeights {
		if strings.Contains(lower, keyword) {
			score += weight
		}
	}
	return math.Min(score, textCap)
}

// tissueScore grades the wound bed composition. Necrotic tissue is the
// highest risk, slough indicates biofilm, and scant granulation means
// the wound is not progressing.
func tissueScore(t TissueComposition) float64 {
	score := 0.0

	switch {
	case t.NecroticPct > 50:
		score += 2.5
	case t.NecroticPct > 25:
		score += 1.5
	case t.NecroticPct > 10:
		score += 0.8
	}

	switch {
	case t.SloughPct > 60:
		score += 1.5
	case t.SloughPct > 30:
		score += 0.8
	case t.SloughPct > 10:
		score += 0.4
	}

	if t.GranulationPct < 20 {
		score += 0.5
	}

	return math.Min(score, tissueCap)
}

func (c *Calculator) exudateScore(level string, t TissueComposition) float64 {
	lower := strings.ToLower(level)

	score, ok := c.cfg.ExudateBase[lower]
	if !ok {
		score = c.cfg.UnknownExudate
	}

	// Heavy exudate over necrotic tissue is especially concerning.
	if lower == "heavy" && t.NecroticPct > 30 {
		score += 0.5
	}

	return math.Min(score, exudateCap)
}

func sizeScore(areaCm2 float64) float64 {
	switch {
	case areaCm2 > 50:
		return 1.0
	case areaCm2 > 25:
		return 0.7
	case areaCm2 > 10:
		return 0.4
	case areaCm2 > 5:
		return 0.2
	default:
		return 0.0
	}
}

func chronicityScore(days *int) float64 {
	if days == nil {
		return 0.0
	}
	switch {
	case *days > 90:
		return 1.0
	case *days > 30:
		return 0.6
	case *days > 14:
		return 0.3
	default:
		return 0.0
	}
}

func (c *Calculator) patientScore(factors map[string]bool) float64 {
	score := 0.0
	for name, present := range factors {
		if present {
			score += c.cfg.FactorWeights[name]
		}
	}
	return math.Min(score, patientCap)
}

// interpret renders the per-band clinical interpretation, with
// conditional clauses when slough or necrotic tissue dominates.
func interpret(score float64, t TissueComposition) string {
	switch {
	case score < 2.5:
		return "Wound shows minimal signs of infection. Continue routine monitoring."
	case score < 5.0:
		interp := "Moderate infection risk detected. "
		if t.SloughPct > 40 {
			interp += "Significant slough present - consider enhanced cleansing. "
		}
		return interp + "Monitor closely for progression."
	case score < 7.5:
		interp := "High infection risk. "
		if t.NecroticPct > 30 {
			interp += "Necrotic tissue requires debridement. "
		}
		return interp + "Consider wound culture and increased monitoring frequency."
	default:
		return "Critical infection risk. Immediate clinical evaluation recommended. " +
			"Consider antibiotic therapy and surgical consultation."
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
