package calibrate

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// markerScene draws a filled dark circle on a white BGR frame, standing in
// for a coin-style reference marker photographed next to a wound.
func markerScene(w, h, cx, cy, radius int) gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), h, w, gocv.MatTypeCV8UC3)
	gocv.Circle(&mat, image.Pt(cx, cy), radius, color.RGBA{R: 30, G: 30, B: 30, A: 255}, -1)
	return mat
}

func TestProfileTable_KnownProfiles(t *testing.T) {
	table := DefaultProfiles()

	factor, name := table.AreaPerPixel("smartphone_far")
	assert.Equal(t, 0.025, factor)
	assert.Equal(t, "smartphone_far", name)

	factor, name = table.AreaPerPixel("professional_camera")
	assert.Equal(t, 0.005, factor)
	assert.Equal(t, "professional_camera", name)
}

func TestProfileTable_UnknownFallsBackToDefault(t *testing.T) {
	table := DefaultProfiles()

	factor, name := table.AreaPerPixel("drone_camera")
	assert.Equal(t, DefaultProfile, name)
	assert.Equal(t, table[DefaultProfile], factor)

	factor, name = table.AreaPerPixel("")
	assert.Equal(t, DefaultProfile, name)
	assert.Equal(t, table[DefaultProfile], factor)
}

func TestDetectReferenceCircle_FindsLargest(t *testing.T) {
	scene := markerScene(400, 400, 150, 200, 60)
	// A second, smaller circle must not win.
	gocv.Circle(&scene, image.Pt(320, 100), 30, color.RGBA{R: 30, G: 30, B: 30, A: 255}, -1)
	defer scene.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(scene, &gray, gocv.ColorBGRToGray)

	circle, ok := DetectReferenceCircle(gray, DefaultReferenceParams())
	require.True(t, ok)
	assert.InDelta(t, 60, circle.Radius, 6)
	assert.InDelta(t, 150, circle.Center.X, 6)
	assert.InDelta(t, 200, circle.Center.Y, 6)
}

func TestDetectReferenceCircle_NoneFound(t *testing.T) {
	blank := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), 300, 300, gocv.MatTypeCV8U)
	defer blank.Close()

	_, ok := DetectReferenceCircle(blank, DefaultReferenceParams())
	assert.False(t, ok)
}

func TestResolve_ReferenceObject(t *testing.T) {
	scene := markerScene(400, 400, 200, 200, 60)
	defer scene.Close()

	cal := NewResolver().Resolve(scene, 3.0, "smartphone_close")

	assert.Equal(t, MethodReferenceObject, cal.Method)
	// 120 px diameter over a 3 cm marker = 40 px/cm.
	assert.InDelta(t, 40, cal.PixelsPerCm, 4)
	assert.InDelta(t, 1/(cal.PixelsPerCm*cal.PixelsPerCm), cal.AreaPerPixelCm2, 1e-9)
	assert.Positive(t, cal.AreaPerPixelCm2)
}

func TestResolve_NoMarkerDegradesToProfile(t *testing.T) {
	blank := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 300, 300, gocv.MatTypeCV8UC3)
	defer blank.Close()

	cal := NewResolver().Resolve(blank, 2.5, "webcam")

	assert.Equal(t, "webcam", cal.Method)
	assert.Equal(t, 0.012, cal.AreaPerPixelCm2)
	assert.InDelta(t, 1/math.Sqrt(0.012), cal.PixelsPerCm, 1e-9)
}

func TestResolve_NoReferenceRequested(t *testing.T) {
	blank := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 100, 100, gocv.MatTypeCV8UC3)
	defer blank.Close()

	cal := NewResolver().Resolve(blank, 0, "smartphone_medium")

	assert.Equal(t, "smartphone_medium", cal.Method)
	assert.Equal(t, 0.015, cal.AreaPerPixelCm2)
}

func TestResolve_AlwaysPositiveFactor(t *testing.T) {
	blank := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 50, 50, gocv.MatTypeCV8UC3)
	defer blank.Close()

	for _, profile := range []string{"smartphone_close", "webcam", "nonsense", ""} {
		cal := NewResolver().Resolve(blank, 0, profile)
		assert.Positive(t, cal.AreaPerPixelCm2, "profile %q", profile)
		assert.Positive(t, cal.PixelsPerCm, "profile %q", profile)
	}
}
