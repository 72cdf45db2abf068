package calibrate

// DefaultProfile is the capture-context profile used when the requested
// profile name is unknown.
const DefaultProfile = "smartphone_close"

// ProfileTable maps a capture-context profile name to its calibration
// factor in cm² per pixel. The table is read-only after construction and
// safe for concurrent readers.
type ProfileTable map[string]float64

// DefaultProfiles returns calibration factors pre-tuned for common
// capture scenarios.
func DefaultProfiles() ProfileTable {
	return ProfileTable{
		"smartphone_close":    0.008, // ~5-10cm distance
		"smartphone_medium":   0.015, // ~15-25cm distance
		"smartphone_far":      0.025, // ~30-40cm distance
		"professional_camera": 0.005, // High-resolution medical camera
		"webcam":              0.012, // Standard webcam
	}
}

// AreaPerPixel resolves a profile name to its cm²-per-pixel factor.
// Unknown names resolve to DefaultProfile rather than failing; the
// returned name is the profile actually used.
func (t ProfileTable) AreaPerPixel(name string) (float64, string) {
	if factor, ok := t[name]; ok {
		return factor, name
	}
	return t[DefaultProfile], DefaultProfile
}
