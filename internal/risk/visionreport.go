package risk

import (
	"encoding/json"
	"strings"
)

// VisionReport is the assessment produced by the upstream vision-language
// model. The model is asked for JSON but frequently wraps it in prose, so
// parsing must be tolerant.
type VisionReport struct {
	TissuePercentages struct {
		GranulationPercent float64 `json:"granulation_percent"`
		SloughPercent      float64 `json:"slough_percent"`
		NecroticPercent    float64 `json:"necrotic_percent"`
		EpithelialPercent  float64 `json:"epithelial_percent"`
	} `json:"tissue_percentages"`
	WoundCharacteristics string   `json:"wound_characteristics"`
	ExudateLevel         string   `json:"exudate_level"`
	ExudateType          string   `json:"exudate_type"`
	InfectionSigns       []string `json:"infection_signs"`
	HealingStage         string   `json:"healing_stage"`
	Recommendations      []string `json:"recommendations"`
	Summary              string   `json:"summary"`
}

// ParseVisionReport extracts the assessment JSON from a raw model
// response. Malformed responses never fail: the raw text becomes the
// summary, tissue percentages default to zero, and the exudate level
// falls back to "unknown" (which scores the neutral default).
func ParseVisionReport(raw string) VisionReport {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		var report VisionReport
		if err := json.Unmarshal([]byte(raw[start:end+1]), &report); err == nil {
			if report.ExudateLevel == "" {
				report.ExudateLevel = "unknown"
			}
			return report
		}
	}

	return VisionReport{
		Summary:      strings.TrimSpace(raw),
		ExudateLevel: "unknown",
	}
}

// Factors assembles risk calculation inputs from the report plus the
// measured wound area and caller-supplied patient context. The clinical
// text is the report's summary, characteristics, and observed infection
// signs joined so keyword scoring sees everything the model reported.
func (r VisionReport) Factors(areaCm2 float64, daysSinceOnset *int, patientFactors map[string]bool) Factors {
	parts := []string{r.Summary, r.WoundCharacteristics}
	parts = append(parts, r.InfectionSigns...)

	return Factors{
		ClinicalText: strings.Join(parts, ". "),
		Tissue: TissueComposition{
			GranulationPct: r.TissuePercentages.GranulationPercent,
			EpithelialPct:  r.TissuePercentages.EpithelialPercent,
			SloughPct:      r.TissuePercentages.SloughPercent,
			NecroticPct:    r.TissuePercentages.NecroticPercent,
		},
		WoundAreaCm2:   areaCm2,
		ExudateLevel:   r.ExudateLevel,
		DaysSinceOnset: daysSinceOnset,
		PatientFactors: patientFactors,
	}
}
