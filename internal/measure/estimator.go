// Package measure implements the wound size estimation engine: it fuses
// the segmentation and calibration stages into physical measurements of
// a wound photograph.
//
// Estimation is a pure function of its inputs. An Estimator is read-only
// after construction and safe for concurrent use.
package measure

import (
	"errors"
	"fmt"
	"image"

	"wound-scan/internal/calibrate"
	"wound-scan/internal/imgio"
	"wound-scan/internal/segment"
	"wound-scan/pkg/geometry"
)

// ErrInvalidImage reports a malformed input image (nil or degenerate
// dimensions). Absence of detectable wound tissue is not an error.
var ErrInvalidImage = errors.New("invalid image")

// MinAreaCm2 is the floor applied to the reported wound area. Anything
// smaller is below the measurement resolution of a phone photo.
const MinAreaCm2 = 0.1

// Options configures a single estimation call.
type Options struct {
	// ReferenceObjectCm is the known diameter of a circular reference
	// marker placed in the frame, in centimeters. Zero means no marker.
	ReferenceObjectCm float64
	// Profile names the capture-context calibration profile used when
	// no reference marker is found. Unknown names resolve to the
	// default profile.
	Profile string
	// IncludeMask requests the fused segmentation mask in the result.
	IncludeMask bool
}

// SizeResult holds the physical measurements of a wound photograph.
type SizeResult struct {
	AreaCm2           float64            `json:"area_cm2"`
	LengthCm          float64            `json:"length_cm"`
	WidthCm           float64            `json:"width_cm"`
	PerimeterCm       float64            `json:"perimeter_cm"`
	PixelArea         int                `json:"pixel_area"`
	Confidence        float64            `json:"confidence"`
	CalibrationMethod string             `json:"calibration_method"`
	CalibrationFactor float64            `json:"calibration_factor"` // cm² per pixel
	Quad              []geometry.Point2D `json:"quad,omitempty"`     // min-area rect corners, pixels
	BoundingBox       geometry.Rect      `json:"bounding_box"`       // axis-aligned bounds of the quad, pixels

	// Mask is the fused segmentation mask, set only when
	// Options.IncludeMask is true.
	Mask *image.Gray `json:"-"`
}

// Estimator runs the full size estimation pipeline.
type Estimator struct {
	seg segment.Params
	cal calibrate.Resolver
}

// NewEstimator returns an Estimator with default segmentation parameters
// and calibration tables.
func NewEstimator() *Estimator {
	return NewEstimatorWith(segment.DefaultParams(), calibrate.NewResolver())
}

// NewEstimatorWith returns an Estimator with custom segmentation
// parameters and calibration resolver, for recalibrated deployments and
// tests.
func NewEstimatorWith(seg segment.Params, cal calibrate.Resolver) *Estimator {
	return &Estimator{seg: seg, cal: cal}
}

// Estimate measures the wound in a photograph. A photo with no detectable
// wound is a valid input: it yields zero dimensions, the minimum area
// floor, and zero confidence.
func (e *Estimator) Estimate(img image.Image, opts Options) (*SizeResult, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, bounds.Dx(), bounds.Dy())
	}
	if opts.ReferenceObjectCm < 0 {
		return nil, fmt.Errorf("%w: negative reference object size %f", ErrInvalidImage, opts.ReferenceObjectCm)
	}

	mat, err := imgio.ToMat(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer mat.Close()

	seg, err := segment.Segment(mat, e.seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer seg.Mask.Close()

	cal := e.cal.Resolve(mat, opts.ReferenceObjectCm, opts.Profile)

	areaCm2 := round2(float64(seg.PixelArea) * cal.AreaPerPixelCm2)
	if areaCm2 < MinAreaCm2 {
		areaCm2 = MinAreaCm2
	}

	dims := measureMask(seg.Mask, cal.PixelsPerCm)

	result := &SizeResult{
		AreaCm2:           areaCm2,
		LengthCm:          dims.lengthCm,
		WidthCm:           dims.widthCm,
		PerimeterCm:       dims.perimeterCm,
		PixelArea:         seg.PixelArea,
		Confidence:        seg.Confidence,
		CalibrationMethod: cal.Method,
		CalibrationFactor: cal.AreaPerPixelCm2,
		Quad:              dims.quad,
		BoundingBox:       geometry.BoundingRect(dims.quad),
	}
	if opts.IncludeMask {
		result.Mask = imgio.MaskToImage(seg.Mask)
	}
	return result, nil
}
