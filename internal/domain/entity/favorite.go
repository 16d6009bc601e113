package entity

import "time"

// Favorite is a point of interest saved by a user, optionally carrying a
// snapshot of the risk assessment that was shown when it was saved.
//
// OwnerUserID, when set, is the only field consulted for access control.
// OwnerDeviceID is kept after a claim but no longer grants access.
type Favorite struct {
	ID              int64
	Lat             float64
	Lon             float64
	Title           string
	TerrainType     *string
	RiskScore       *int
	RiskDescription *string
	Explanation     *string
	SimpleWarnings  *string
	NearestShelter  *string
	OwnerDeviceID   *string
	OwnerUserID     *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
