package entity

// Shelter is an emergency evacuation site. Like HazardRecord it is bulk-loaded reference data.
type Shelter struct {
	ID               int64
	Name             string
	Ward             string
	Address          string
	Type             string // e.g. designated shelter, temporary evacuation site.
	Capacity         *int
	Lat              float64
	Lon              float64
	Phone            string
	OpeningCondition string
	Source           string
}

// RankedShelter is a shelter annotated with its great-circle distance from a query point.
type RankedShelter struct {
	Shelter
	DistanceKm float64
}
