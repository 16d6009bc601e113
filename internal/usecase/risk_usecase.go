// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hazardmap/internal/domain/entity"

	"golang.org/x/text/language"
)

// RiskStatus tells whether a hazard record was found near the queried point.
type RiskStatus string

const (
	RiskStatusOK      RiskStatus = "ok"
	RiskStatusNoMatch RiskStatus = "no_match"
)

// RiskLookupInput defines the data required for a risk lookup.
type RiskLookupInput struct {
	Lat float64
	Lon float64
	// AcceptLanguage is the raw header; it only selects the explanation language.
	AcceptLanguage string
}

// RiskResult is the answer to a risk lookup. OverallRisk and DistanceM are
// nil when Status is RiskStatusNoMatch.
type RiskResult struct {
	Status          RiskStatus
	OverallRisk     *int
	RiskDescription string
	Explanation     string
	DistanceM       *float64
	Language        language.Tag
}

// RiskUsecase answers "what hazard applies near this coordinate?".
type RiskUsecase interface {
	// FindNearest returns the closest hazard record within the configured
	// distance together with its planar distance in metres. The record is nil
	// when nothing lies within range.
	FindNearest(ctx context.Context, lat, lon float64) (*entity.HazardRecord, float64, error)

	// Lookup resolves the nearest record and renders its explanation.
	Lookup(ctx context.Context, input *RiskLookupInput) (*RiskResult, error)
}
