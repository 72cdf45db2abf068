// Command riskscore computes an infection risk score from clinical
// observations, either supplied as flags or read from a vision-model
// report file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"wound-scan/internal/risk"
	"wound-scan/internal/version"
)

func main() {
	text := flag.String("text", "", "Free-text clinical notes")
	area := flag.Float64("area", 0, "Wound area in cm²")
	exudate := flag.String("exudate", "none", "Exudate level: none, light, moderate, heavy")
	onset := flag.Int("onset", -1, "Days since wound onset (-1 = unknown)")
	granulation := flag.Float64("granulation", 0, "Granulation tissue percent")
	epithelial := flag.Float64("epithelial", 0, "Epithelial tissue percent")
	slough := flag.Float64("slough", 0, "Slough percent")
	necrotic := flag.Float64("necrotic", 0, "Necrotic tissue percent")
	eschar := flag.Float64("eschar", 0, "Eschar percent")
	factorList := flag.String("factors", "", "Comma-separated patient risk factors (e.g. diabetes,smoking)")
	reportPath := flag.String("report", "", "Path to a vision-model report; overrides text, tissue, and exudate flags")
	jsonOut := flag.Bool("json", false, "Print the result as JSON")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("riskscore %s (%s)\n", version.Version, version.Commit)
		return
	}

	var daysSinceOnset *int
	if *onset >= 0 {
		daysSinceOnset = onset
	}

	patientFactors := map[string]bool{}
	for _, name := range strings.Split(*factorList, ",") {
		if name = strings.TrimSpace(name); name != "" {
			patientFactors[name] = true
		}
	}

	factors := risk.Factors{
		ClinicalText: *text,
		Tissue: risk.TissueComposition{
			GranulationPct: *granulation,
			EpithelialPct:  *epithelial,
			SloughPct:      *slough,
			NecroticPct:    *necrotic,
			EscharPct:      *eschar,
		},
		WoundAreaCm2:   *area,
		ExudateLevel:   *exudate,
		DaysSinceOnset: daysSinceOnset,
		PatientFactors: patientFactors,
	}

	if *reportPath != "" {
		raw, err := os.ReadFile(*reportPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read report: %v\n", err)
			os.Exit(1)
		}
		report := risk.ParseVisionReport(string(raw))
		factors = report.Factors(*area, daysSinceOnset, patientFactors)
	}

	calc := risk.NewCalculator(risk.DefaultConfig())
	result, err := calc.Calculate(factors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scoring failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Infection risk: %.1f/10 (%s)\n", result.TotalScore, result.Level)
	fmt.Printf("\nSubscores:\n")
	fmt.Printf("  Clinical indicators: %.2f\n", result.Subscores.ClinicalIndicators)
	fmt.Printf("  Tissue composition:  %.2f\n", result.Subscores.TissueComposition)
	fmt.Printf("  Exudate:             %.2f\n", result.Subscores.Exudate)
	fmt.Printf("  Wound size:          %.2f\n", result.Subscores.WoundSize)
	fmt.Printf("  Chronicity:          %.2f\n", result.Subscores.Chronicity)
	fmt.Printf("  Patient factors:     %.2f\n", result.Subscores.PatientFactors)
	fmt.Printf("\n%s\n", result.Interpretation)
}
