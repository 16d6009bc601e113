package model

// TerrainRiskModel mirrors the 'terrain_risk' table. X and Y hold the
// projected plane coordinates in metres, computed at import time.
type TerrainRiskModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Lat             float64 `gorm:"not null;uniqueIndex:idx_terrain_risk_lat_lon"`
	Lon             float64 `gorm:"not null;uniqueIndex:idx_terrain_risk_lat_lon"`
	X               float64 `gorm:"not null"`
	Y               float64 `gorm:"not null"`
	FloodRisk       int     `gorm:"not null;default:0"`
	LandslideRisk   int     `gorm:"not null;default:0"`
	TsunamiRisk     int     `gorm:"not null;default:0"`
	OverallRisk     int     `gorm:"not null;default:0"`
	RiskDescription string  `gorm:"type:varchar(255)"`
	ElevScore       *float64
	SlopeScore      *float64
	RiverScore      *float64
}

// TableName explicitly sets the table name for GORM.
func (TerrainRiskModel) TableName() string {
	return "terrain_risk"
}
