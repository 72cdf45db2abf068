package segment

import (
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// fuseMasks combines the three detector masks by weighted vote and cleans
// the result with a morphological close (fill small gaps) followed by an
// open (remove speckle).
func fuseMasks(hsvMask, labMask, rgMask gocv.Mat, p Params) gocv.Mat {
	w := p.FusionWeights

	weighted := gocv.NewMat()
	gocv.AddWeighted(hsvMask, w[0], labMask, w[1], 0, &weighted)
	gocv.AddWeighted(weighted, 1.0, rgMask, w[2], 0, &weighted)

	// Midpoint threshold: a pixel passes when its weighted vote exceeds
	// half the maximum possible vote.
	midpoint := float32(255 * (w[0] + w[1] + w[2]) / 2)
	fused := gocv.NewMat()
	gocv.Threshold(weighted, &fused, midpoint, 255, gocv.ThresholdBinary)
	weighted.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Point{p.KernelSize, p.KernelSize})
	defer kernel.Close()
	gocv.MorphologyEx(fused, &fused, gocv.MorphClose, kernel)
	gocv.MorphologyEx(fused, &fused, gocv.MorphOpen, kernel)

	return fused
}

// agreementConfidence scores detector agreement as the mean pairwise IoU
// of the three raw masks, penalized when the fused mask covers an
// implausibly small or large fraction of the frame. Result is rounded to
// three decimals and always within [0, 1].
func agreementConfidence(hsvMask, labMask, rgMask, fused gocv.Mat, p Params) float64 {
	ious := []float64{
		iou(hsvMask, labMask),
		iou(hsvMask, rgMask),
		iou(labMask, rgMask),
	}
	confidence := stat.Mean(ious, nil)

	total := fused.Rows() * fused.Cols()
	if total > 0 {
		areaFraction := float64(gocv.CountNonZero(fused)) / float64(total)
		if areaFraction < p.MinAreaFraction || areaFraction > p.MaxAreaFraction {
			confidence *= p.AreaPenalty
		}
	}

	confidence = math.Round(confidence*1000) / 1000
	return math.Min(math.Max(confidence, 0), 1)
}

// iou computes Intersection-over-Union between two binary masks.
// Two empty masks have zero union and score 0.
func iou(a, b gocv.Mat) float64 {
	intersection := gocv.NewMat()
	defer intersection.Close()
	gocv.BitwiseAnd(a, b, &intersection)

	union := gocv.NewMat()
	defer union.Close()
	gocv.BitwiseOr(a, b, &union)

	unionCount := gocv.CountNonZero(union)
	if unionCount == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(intersection)) / float64(unionCount)
}
