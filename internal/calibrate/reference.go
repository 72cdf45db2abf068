package calibrate

import (
	"gocv.io/x/gocv"

	"wound-scan/pkg/geometry"
)

// ReferenceParams tunes the Hough circle search for the reference marker.
type ReferenceParams struct {
	DP        float64 // Inverse accumulator resolution ratio
	MinDist   float64 // Minimum distance between detected centers
	Param1    float64 // Upper Canny threshold
	Param2    float64 // Accumulator threshold; lower finds more circles
	MinRadius int     // Pixels
	MaxRadius int     // Pixels
}

// DefaultReferenceParams returns Hough parameters tuned for coin-sized
// circular markers placed next to the wound.
func DefaultReferenceParams() ReferenceParams {
	return ReferenceParams{
		DP:        1,
		MinDist:   50,
		Param1:    50,
		Param2:    30,
		MinRadius: 20,
		MaxRadius: 200,
	}
}

// DetectReferenceCircle searches a grayscale image for circular reference
// markers and returns the largest one by radius. The boolean is false
// when no circle is found; callers fall back to profile calibration.
func DetectReferenceCircle(gray gocv.Mat, p ReferenceParams) (geometry.Circle, bool) {
	circles := gocv.NewMat()
	defer circles.Close()

	gocv.HoughCirclesWithParams(gray, &circles, gocv.HoughGradient,
		p.DP, p.MinDist, p.Param1, p.Param2, p.MinRadius, p.MaxRadius)

	if circles.Empty() || circles.Cols() == 0 {
		return geometry.Circle{}, false
	}

	// The largest circle is assumed to be the reference marker.
	var best geometry.Circle
	for i := 0; i < circles.Cols(); i++ {
		c := geometry.Circle{
			Center: geometry.Point2D{
				X: float64(circles.GetFloatAt(0, i*3)),
				Y: float64(circles.GetFloatAt(0, i*3+1)),
			},
			Radius: float64(circles.GetFloatAt(0, i*3+2)),
		}
		if c.Radius > best.Radius {
			best = c
		}
	}
	return best, true
}
