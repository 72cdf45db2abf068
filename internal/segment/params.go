package segment

// HSVRange defines a color range in HSV space (OpenCV convention:
// H 0-180, S 0-255, V 0-255).
type HSVRange struct {
	HueMin float64 `json:"hue_min"`
	HueMax float64 `json:"hue_max"`
	SatMin float64 `json:"sat_min"`
	SatMax float64 `json:"sat_max"`
	ValMin float64 `json:"val_min"`
	ValMax float64 `json:"val_max"`
}

// LabRange defines a color range in CIE Lab space (OpenCV 8-bit scaling:
// L 0-255, a 0-255 centered at 128, b 0-255 centered at 128).
type LabRange struct {
	LMin float64 `json:"l_min"`
	LMax float64 `json:"l_max"`
	AMin float64 `json:"a_min"`
	AMax float64 `json:"a_max"`
	BMin float64 `json:"b_min"`
	BMax float64 `json:"b_max"`
}

// Params configures wound segmentation. All thresholds are empirically
// tuned; treat them as candidates for recalibration against labeled
// images rather than fixed truths.
type Params struct {
	// HSV detector bands. Red hue wraps around 0/180, so two disjoint
	// red bands are needed, plus a wider band for pink/light-red tissue.
	RedBandLow  HSVRange `json:"red_band_low"`
	RedBandHigh HSVRange `json:"red_band_high"`
	PinkBand    HSVRange `json:"pink_band"`

	// Lab detector band. The a channel is the red-green opponent axis;
	// a above ~130 selects red regardless of brightness shifts.
	LabBand LabRange `json:"lab_band"`

	// Channel-difference detector: red must exceed green by this margin.
	RedGreenMargin int `json:"red_green_margin"`

	// Fusion weights for the HSV, Lab, and channel-difference masks,
	// in that order. Must sum to 1. A pixel joins the fused mask when
	// the weighted vote exceeds half the maximum.
	FusionWeights [3]float64 `json:"fusion_weights"`

	// Structuring element size for the close-then-open cleanup.
	KernelSize int `json:"kernel_size"`

	// Plausible wound fraction of the frame. Fused masks outside this
	// band get the confidence penalty applied.
	MinAreaFraction float64 `json:"min_area_fraction"`
	MaxAreaFraction float64 `json:"max_area_fraction"`
	AreaPenalty     float64 `json:"area_penalty"`
}

// DefaultParams returns segmentation parameters tuned for red/pink wound
// tissue photographed against skin.
func DefaultParams() Params {
	return Params{
		RedBandLow: HSVRange{
			HueMin: 0, HueMax: 10,
			SatMin: 40, SatMax: 255,
			ValMin: 40, ValMax: 255,
		},
		RedBandHigh: HSVRange{
			HueMin: 160, HueMax: 180,
			SatMin: 40, SatMax: 255,
			ValMin: 40, ValMax: 255,
		},
		PinkBand: HSVRange{
			HueMin: 0, HueMax: 20,
			SatMin: 20, SatMax: 150,
			ValMin: 100, ValMax: 255,
		},

		LabBand: LabRange{
			LMin: 20, LMax: 255,
			AMin: 130, AMax: 255,
			BMin: 0, BMax: 255,
		},

		RedGreenMargin: 15,

		// Favor the two color-space detectors over the cheap
		// channel-difference proxy.
		FusionWeights: [3]float64{0.4, 0.4, 0.2},

		KernelSize: 5,

		MinAreaFraction: 0.01,
		MaxAreaFraction: 0.7,
		AreaPenalty:     0.7,
	}
}

// WithFusionWeights returns a copy of params with custom fusion weights.
func (p Params) WithFusionWeights(hsv, lab, channelDiff float64) Params {
	p.FusionWeights = [3]float64{hsv, lab, channelDiff}
	return p
}

// WithAreaBand returns a copy of params with a custom plausible-area band.
func (p Params) WithAreaBand(minFraction, maxFraction float64) Params {
	p.MinAreaFraction = minFraction
	p.MaxAreaFraction = maxFraction
	return p
}
