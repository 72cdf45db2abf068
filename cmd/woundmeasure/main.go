// Command woundmeasure runs wound size estimation on a photo and prints
// the measurements.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"os"

	"wound-scan/internal/imgio"
	"wound-scan/internal/measure"
	"wound-scan/internal/version"
	"wound-scan/pkg/colorutil"
)

func main() {
	imagePath := flag.String("image", "", "Path to wound photo (JPEG, PNG, or TIFF)")
	reference := flag.Float64("reference", 0, "Known diameter of circular reference marker in cm (0 = none)")
	profile := flag.String("profile", "smartphone_close", "Capture-context calibration profile")
	overlayPath := flag.String("overlay", "", "Optional path to write a PNG with the detected region tinted")
	jsonOut := flag.Bool("json", false, "Print the result as JSON")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("woundmeasure %s (%s)\n", version.Version, version.Commit)
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: woundmeasure -image <path> [-reference 2.5] [-profile smartphone_close] [-overlay out.png] [-json]")
		os.Exit(1)
	}

	img, format, err := imgio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	estimator := measure.NewEstimator()
	result, err := estimator.Estimate(img, measure.Options{
		ReferenceObjectCm: *reference,
		Profile:           *profile,
		IncludeMask:       *overlayPath != "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Estimation failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
			os.Exit(1)
		}
	} else {
		bounds := img.Bounds()
		fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())
		fmt.Printf("\nWound measurements:\n")
		fmt.Printf("  Area:       %.2f cm²\n", result.AreaCm2)
		fmt.Printf("  Length:     %.2f cm\n", result.LengthCm)
		fmt.Printf("  Width:      %.2f cm\n", result.WidthCm)
		fmt.Printf("  Perimeter:  %.2f cm\n", result.PerimeterCm)
		fmt.Printf("  Pixel area: %d px\n", result.PixelArea)
		fmt.Printf("  Confidence: %.1f%%\n", result.Confidence*100)
		fmt.Printf("  Calibration: %s (%.5f cm²/px)\n", result.CalibrationMethod, result.CalibrationFactor)
	}

	if *overlayPath != "" && result.Mask != nil {
		overlay := imgio.OverlayMask(img, result.Mask, colorutil.Green)
		f, err := os.Create(*overlayPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create overlay file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := png.Encode(f, overlay); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nOverlay written to %s\n", *overlayPath)
	}
}
