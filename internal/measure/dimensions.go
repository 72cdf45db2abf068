package measure

import (
	"math"

	"gocv.io/x/gocv"

	"wound-scan/pkg/geometry"
)

// dimensions holds physical measurements derived from the wound contour.
type dimensions struct {
	lengthCm    float64
	widthCm     float64
	perimeterCm float64
	quad        []geometry.Point2D
}

// measureMask extracts the primary wound contour from the fused mask and
// measures it in centimeters. An empty mask yields zero dimensions — a
// valid outcome, not an error. Ties for the largest contour go to the
// first contour in gocv's traversal order, which is deterministic for a
// fixed mask.
func measureMask(mask gocv.Mat, pixelsPerCm float64) dimensions {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return dimensions{}
	}

	bestIdx := 0
	bestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			bestArea = area
			bestIdx = i
		}
	}
	best := contours.At(bestIdx)

	rect := gocv.MinAreaRect(best)
	lengthPx := math.Max(float64(rect.Width), float64(rect.Height))
	widthPx := math.Min(float64(rect.Width), float64(rect.Height))
	perimeterPx := gocv.ArcLength(best, true)

	return dimensions{
		lengthCm:    round2(lengthPx / pixelsPerCm),
		widthCm:     round2(widthPx / pixelsPerCm),
		perimeterCm: round2(perimeterPx / pixelsPerCm),
		quad:        rectCorners(rect),
	}
}

// rectCorners computes the four corners of a rotated rectangle in image
// coordinates.
func rectCorners(rect gocv.RotatedRect) []geometry.Point2D {
	cx := float64(rect.Center.X)
	cy := float64(rect.Center.Y)
	hw := float64(rect.Width) / 2
	hh := float64(rect.Height) / 2
	angle := rect.Angle * math.Pi / 180.0

	cos := math.Cos(angle)
	sin := math.Sin(angle)

	return []geometry.Point2D{
		{X: cx + (-hw)*cos - (-hh)*sin, Y: cy + (-hw)*sin + (-hh)*cos},
		{X: cx + hw*cos - (-hh)*sin, Y: cy + hw*sin + (-hh)*cos},
		{X: cx + hw*cos - hh*sin, Y: cy + hw*sin + hh*cos},
		{X: cx + (-hw)*cos - hh*sin, Y: cy + (-hw)*sin + hh*cos},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
