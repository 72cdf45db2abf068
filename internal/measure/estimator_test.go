package measure

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wound-scan/pkg/colorutil"
)

var woundRed = color.RGBA{R: 200, G: 30, B: 40, A: 255}

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorutil.White}, image.Point{}, draw.Src)
	return img
}

func withWound(img *image.RGBA, r image.Rectangle) *image.RGBA {
	draw.Draw(img, r, &image.Uniform{C: woundRed}, image.Point{}, draw.Src)
	return img
}

func TestEstimate_RedSquare(t *testing.T) {
	img := withWound(whiteImage(400, 400), image.Rect(100, 100, 200, 200))

	result, err := NewEstimator().Estimate(img, Options{Profile: "smartphone_close"})
	require.NoError(t, err)

	// 100x100 px at 0.008 cm²/px = 80 cm².
	assert.InDelta(t, 80.0, result.AreaCm2, 4)
	assert.InDelta(t, 100*100, result.PixelArea, 500)

	// Side length 100 px at 1/sqrt(0.008) px/cm ≈ 8.94 cm each way.
	sideCm := 100 * math.Sqrt(0.008)
	assert.InDelta(t, sideCm, result.LengthCm, 0.5)
	assert.InDelta(t, sideCm, result.WidthCm, 0.5)
	assert.GreaterOrEqual(t, result.LengthCm, result.WidthCm)
	assert.InDelta(t, 4*sideCm, result.PerimeterCm, 1.5)

	assert.Equal(t, "smartphone_close", result.CalibrationMethod)
	assert.Equal(t, 0.008, result.CalibrationFactor)
	assert.Greater(t, result.Confidence, 0.5)
	assert.Len(t, result.Quad, 4)

	// The bounding box should track the drawn patch.
	assert.InDelta(t, 100, result.BoundingBox.X, 4)
	assert.InDelta(t, 100, result.BoundingBox.Y, 4)
	assert.InDelta(t, 100, result.BoundingBox.Width, 6)
	assert.InDelta(t, 100, result.BoundingBox.Height, 6)
}

func TestEstimate_AllWhiteImage(t *testing.T) {
	result, err := NewEstimator().Estimate(whiteImage(300, 300), Options{IncludeMask: true})
	require.NoError(t, err)

	// No detection is a valid degraded outcome: zero dimensions, the
	// area floor, and zero confidence.
	assert.Equal(t, MinAreaCm2, result.AreaCm2)
	assert.Zero(t, result.LengthCm)
	assert.Zero(t, result.WidthCm)
	assert.Zero(t, result.PerimeterCm)
	assert.Zero(t, result.PixelArea)
	assert.Zero(t, result.Confidence)

	require.NotNil(t, result.Mask)
	bounds := result.Mask.Bounds()
	assert.Equal(t, 300, bounds.Dx())
	assert.Equal(t, 300, bounds.Dy())
}

func TestEstimate_AreaFloor(t *testing.T) {
	// A detection too small to survive the morphological open must
	// still report the floor, never an implausible near-zero area.
	img := withWound(whiteImage(300, 300), image.Rect(140, 140, 144, 144))

	result, err := NewEstimator().Estimate(img, Options{Profile: "professional_camera"})
	require.NoError(t, err)

	assert.Equal(t, MinAreaCm2, result.AreaCm2)
}

func TestEstimate_UnknownProfileFallsBack(t *testing.T) {
	img := withWound(whiteImage(200, 200), image.Rect(50, 50, 150, 150))

	result, err := NewEstimator().Estimate(img, Options{Profile: "satellite"})
	require.NoError(t, err)

	assert.Equal(t, "smartphone_close", result.CalibrationMethod)
}

func TestEstimate_MaskOnlyWhenRequested(t *testing.T) {
	img := withWound(whiteImage(200, 200), image.Rect(50, 50, 150, 150))

	withoutMask, err := NewEstimator().Estimate(img, Options{})
	require.NoError(t, err)
	assert.Nil(t, withoutMask.Mask)

	withMask, err := NewEstimator().Estimate(img, Options{IncludeMask: true})
	require.NoError(t, err)
	require.NotNil(t, withMask.Mask)
	assert.EqualValues(t, 255, withMask.Mask.GrayAt(100, 100).Y)
	assert.EqualValues(t, 0, withMask.Mask.GrayAt(10, 10).Y)
}

func TestEstimate_LargestContourWins(t *testing.T) {
	// Two disjoint regions: measurements must come from the bigger one,
	// while the pixel area counts both.
	img := whiteImage(400, 400)
	withWound(img, image.Rect(40, 40, 100, 100))   // 60x60
	withWound(img, image.Rect(200, 150, 360, 310)) // 160x160

	result, err := NewEstimator().Estimate(img, Options{Profile: "smartphone_close"})
	require.NoError(t, err)

	sideCm := 160 * math.Sqrt(0.008)
	assert.InDelta(t, sideCm, result.LengthCm, 0.6)
	assert.InDelta(t, 60*60+160*160, result.PixelArea, 800)
}

func TestEstimate_Deterministic(t *testing.T) {
	img := whiteImage(300, 300)
	// Two equal-area regions exercise the tie-break; the result must be
	// identical across runs.
	withWound(img, image.Rect(30, 30, 110, 110))
	withWound(img, image.Rect(170, 170, 250, 250))

	first, err := NewEstimator().Estimate(img, Options{})
	require.NoError(t, err)
	second, err := NewEstimator().Estimate(img, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimate_InvalidInputs(t *testing.T) {
	_, err := NewEstimator().Estimate(nil, Options{})
	require.ErrorIs(t, err, ErrInvalidImage)

	_, err = NewEstimator().Estimate(image.NewRGBA(image.Rect(0, 0, 0, 0)), Options{})
	require.ErrorIs(t, err, ErrInvalidImage)

	img := whiteImage(100, 100)
	_, err = NewEstimator().Estimate(img, Options{ReferenceObjectCm: -2.5})
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestEstimate_ReferenceMarkerCalibration(t *testing.T) {
	// Wound patch plus a dark circular marker of known physical size.
	img := withWound(whiteImage(400, 400), image.Rect(40, 40, 140, 140))
	drawDisk(img, 300, 300, 60, color.RGBA{R: 30, G: 30, B: 30, A: 255})

	result, err := NewEstimator().Estimate(img, Options{ReferenceObjectCm: 3.0})
	require.NoError(t, err)

	assert.Equal(t, "reference_object", result.CalibrationMethod)
	// 120 px / 3 cm = 40 px/cm, so the 100 px wound side is 2.5 cm and
	// the area factor is 1/1600 cm²/px.
	assert.InDelta(t, 2.5, result.LengthCm, 0.4)
	assert.InDelta(t, 100*100.0/1600.0, result.AreaCm2, 1.2)
}

func drawDisk(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
