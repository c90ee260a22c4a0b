package water

// Band is the color category of a water column, chosen from its height.
type Band uint8

const (
	BandBottom Band = iota // height <= LowerThreshold
	BandMiddle             // LowerThreshold < height <= UpperThreshold
	BandTop                // height > UpperThreshold
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandBottom:
		return "bottom"
	case BandMiddle:
		return "middle"
	case BandTop:
		return "top"
	default:
		return "unknown"
	}
}

// Classify returns the band for height under p's thresholds.
func Classify(height float64, p Params) Band {
	switch {
	case height > p.UpperThreshold:
		return BandTop
	case height > p.LowerThreshold:
		return BandMiddle
	default:
		return BandBottom
	}
}

// Palette maps each band to an RGB triple. Colors are a presentation
// concern; the grid only tracks bands.
type Palette [3][3]float32

// DefaultPalette returns dark, medium and light blue.
func DefaultPalette() Palette {
	return Palette{
		BandBottom: {0.2, 0.2, 0.8},
		BandMiddle: {0.4, 0.6, 0.8},
		BandTop:    {0.8, 0.8, 1.0},
	}
}

// Color returns the RGB triple for b.
func (p Palette) Color(b Band) [3]float32 {
	if int(b) >= len(p) {
		return p[BandBottom]
	}
	return p[b]
}
