// Package entity contains the core business objects of the project.
package entity

// HazardRecord is one terrain-risk sample loaded offline from the hazard survey.
// It is reference data: request handlers never mutate or delete it.
type HazardRecord struct {
	ID              int64    // Storage identifier; also the scan order for tie-breaking.
	Lat             float64  // WGS84 latitude.
	Lon             float64  // WGS84 longitude.
	X               float64  // Projected easting in metres (see geo.Project).
	Y               float64  // Projected northing in metres.
	ElevScore       *float64 // Elevation score, nil when not surveyed.
	SlopeScore      *float64 // Slope score, nil when not surveyed.
	RiverScore      *float64 // River proximity score, nil when not surveyed.
	FloodRisk       int
	LandslideRisk   int
	TsunamiRisk     int
	OverallRisk     int
	RiskDescription string // Free text, e.g. "洪水,土砂災害".
}

// ScoreOrZero dereferences an optional score, treating an absent value as zero.
func ScoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}

	return *score
}
