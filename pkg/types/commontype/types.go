package commontype

// Like target kinds
const (
	TargetKindUser     = "user"
	TargetKindProperty = "property"
)

// Search radii are stored in kilometers, the geo index works in meters
const MetersPerKilometer = 1000.0

// Coordinate bounds
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

func IsValidTargetKind(kind string) bool {
	return kind == TargetKindUser || kind == TargetKindProperty
}
