// Package calibrate resolves the pixel-to-physical conversion factor for
// wound photographs, either from a detected circular reference marker of
// known size or from a named capture-context profile.
package calibrate

import (
	"math"

	"gocv.io/x/gocv"
)

// MethodReferenceObject tags calibrations derived from a detected
// reference marker. Profile-based calibrations are tagged with the
// profile name instead.
const MethodReferenceObject = "reference_object"

// Calibration is the resolved pixel-to-physical conversion. Both factor
// forms are always populated; AreaPerPixelCm2 == 1/PixelsPerCm².
type Calibration struct {
	AreaPerPixelCm2 float64 `json:"area_per_pixel_cm2"`
	PixelsPerCm     float64 `json:"pixels_per_cm"`
	Method          string  `json:"method"`
}

// Resolver determines calibration factors. The zero value is not usable;
// construct with NewResolver.
type Resolver struct {
	Profiles  ProfileTable
	Reference ReferenceParams
}

// NewResolver returns a Resolver with the default profile table and
// reference-marker detection parameters.
func NewResolver() Resolver {
	return Resolver{
		Profiles:  DefaultProfiles(),
		Reference: DefaultReferenceParams(),
	}
}

// Resolve determines the calibration for a BGR photo. When referenceCm is
// positive, a circular marker of that diameter is searched for first; a
// found marker gives the most accurate calibration. Absence of a marker
// is not an error — calibration degrades to the named profile, and
// unknown profile names degrade further to the default profile. The
// returned factor is always positive.
func (r Resolver) Resolve(src gocv.Mat, referenceCm float64, profile string) Calibration {
	if referenceCm > 0 && !src.Empty() {
		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

		if circle, ok := DetectReferenceCircle(gray, r.Reference); ok {
			pixelsPerCm := circle.Diameter() / referenceCm
			if pixelsPerCm > 0 {
				return Calibration{
					AreaPerPixelCm2: 1 / (pixelsPerCm * pixelsPerCm),
					PixelsPerCm:     pixelsPerCm,
					Method:          MethodReferenceObject,
				}
			}
		}
	}

	factor, name := r.Profiles.AreaPerPixel(profile)
	return Calibration{
		AreaPerPixelCm2: factor,
		PixelsPerCm:     1 / math.Sqrt(factor),
		Method:          name,
	}
}
