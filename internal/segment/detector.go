package segment

import (
	"gocv.io/x/gocv"
)

// maskHSV flags red and pink pixels using HSV thresholding. Red hue wraps
// around the 0/180 boundary, so two disjoint red bands are combined with a
// wider pink band for light, desaturated wound tissue.
func maskHSV(src gocv.Mat, p Params) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(src, &hsv, gocv.ColorBGRToHSV)

	redLow := inRangeHSV(hsv, p.RedBandLow)
	defer redLow.Close()
	redHigh := inRangeHSV(hsv, p.RedBandHigh)
	defer redHigh.Close()
	pink := inRangeHSV(hsv, p.PinkBand)
	defer pink.Close()

	mask := gocv.NewMat()
	gocv.BitwiseOr(redLow, redHigh, &mask)
	gocv.BitwiseOr(mask, pink, &mask)
	return mask
}

// maskLab flags red pixels using the Lab red-green opponent channel.
// The a channel is stable under brightness shifts that preserve chroma,
// which makes this detector tolerant to uneven lighting.
func maskLab(src gocv.Mat, p Params) gocv.Mat {
	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(src, &lab, gocv.ColorBGRToLab)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(lab,
		gocv.NewScalar(p.LabBand.LMin, p.LabBand.AMin, p.LabBand.BMin, 0),
		gocv.NewScalar(p.LabBand.LMax, p.LabBand.AMax, p.LabBand.BMax, 0),
		&mask)
	return mask
}

// maskRedGreen flags pixels whose red channel exceeds green by more than
// the configured margin. A cheap proxy for "redder than surrounding skin".
func maskRedGreen(src gocv.Mat, p Params) gocv.Mat {
	rows, cols := src.Rows(), src.Cols()
	mask := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// BGR order: B=0, G=1, R=2
			g := int(src.GetUCharAt(y, x*3+1))
			r := int(src.GetUCharAt(y, x*3+2))
			if r-g > p.RedGreenMargin {
				mask.SetUCharAt(y, x, 255)
			} else {
				mask.SetUCharAt(y, x, 0)
			}
		}
	}
	return mask
}

func inRangeHSV(hsv gocv.Mat, band HSVRange) gocv.Mat {
	mask := gocv.NewMat()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(band.HueMin, band.SatMin, band.ValMin, 0),
		gocv.NewScalar(band.HueMax, band.SatMax, band.ValMax, 0),
		&mask)
	return mask
}
