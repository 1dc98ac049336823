package pricenorm

// Dimension classifies units into comparable families. Conversions are only
// valid between units of the same dimension.
type Dimension string

const (
	DimensionMass   Dimension = "mass"
	DimensionVolume Dimension = "volume"
	DimensionCount  Dimension = "count"
	DimensionLength Dimension = "length"
	DimensionArea   Dimension = "area"
)

var allDimensions = []Dimension{
	DimensionMass,
	DimensionVolume,
	DimensionCount,
	DimensionLength,
	DimensionArea,
}

func (d Dimension) Valid() bool {
	for _, known := range allDimensions {
		if d == known {
			return true
		}
	}
	return false
}

func (d Dimension) String() string {
	return string(d)
}
