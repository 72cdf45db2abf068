// Package segment implements wound segmentation: three independent
// color-model detectors fused into a single binary mask with an
// agreement-based confidence score.
//
// Segmentation is a pure function of the input image and parameters.
// Params values are read-only after construction, so concurrent calls
// need no coordination.
package segment

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Result holds the fused wound mask and detector agreement confidence.
type Result struct {
	// Mask is the fused binary mask (255 = wound pixel). The caller
	// owns it and must Close it.
	Mask gocv.Mat
	// Confidence is the detector agreement score in [0, 1].
	Confidence float64
	// PixelArea is the number of wound pixels in the fused mask.
	PixelArea int
}

// Segment runs the three detectors over a BGR image, fuses their masks,
// and scores detector agreement. An image with no wound-colored pixels is
// a valid input: it yields an empty mask with zero confidence.
func Segment(src gocv.Mat, p Params) (Result, error) {
	if src.Empty() {
		return Result{}, fmt.Errorf("empty image")
	}
	if src.Channels() != 3 {
		return Result{}, fmt.Errorf("expected 3-channel BGR image, got %d channels", src.Channels())
	}

	hsvMask := maskHSV(src, p)
	defer hsvMask.Close()
	labMask := maskLab(src, p)
	defer labMask.Close()
	rgMask := maskRedGreen(src, p)
	defer rgMask.Close()

	fused := fuseMasks(hsvMask, labMask, rgMask, p)
	confidence := agreementConfidence(hsvMask, labMask, rgMask, fused, p)

	return Result{
		Mask:       fused,
		Confidence: confidence,
		PixelArea:  gocv.CountNonZero(fused),
	}, nil
}
