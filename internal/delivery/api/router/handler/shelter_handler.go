package handler

import (
	"log/slog"
	"net/http"

	"hazardmap/internal/delivery/api/response"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShelterHandlerParams holds dependencies for ShelterHandler, injected by Fx.
type ShelterHandlerParams struct {
	fx.In

	ShelterUC usecase.ShelterUsecase
	Logger    *slog.Logger
}

// ShelterHandler serves shelter rankings.
type ShelterHandler struct {
	shelterUC usecase.ShelterUsecase
	logger    *slog.Logger
}

// NewShelterHandler is the constructor for ShelterHandler
func NewShelterHandler(params ShelterHandlerParams) *ShelterHandler {
	return &ShelterHandler{
		shelterUC: params.ShelterUC,
		logger:    params.Logger,
	}
}

// ShelterResponse is one ranked shelter.
type ShelterResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Ward             string  `json:"ward"`
	Address          string  `json:"address"`
	Type             string  `json:"type"`
	Capacity         *int    `json:"capacity"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	Phone            string  `json:"phone"`
	OpeningCondition string  `json:"opening_condition"`
	DistanceKm       float64 `json:"distance_km"`
}

// GetNearest handles GET /shelters/nearest?lat=&lon=&limit=
func (h *ShelterHandler) GetNearest(c echo.Context) error {
	q, err := bindCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lon must be numbers")
	}

	input := &usecase.NearestSheltersInput{Lat: q.Lat, Lon: q.Lon}

	if c.QueryParam("limit") != "" {
		var limit int
		if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
		}
		input.Limit = &limit
	}

	ranked, err := h.shelterUC.Nearest(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShelterResponses(ranked))
}

func toShelterResponses(ranked []*entity.RankedShelter) []*ShelterResponse {
	out := make([]*ShelterResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, &ShelterResponse{
			ID:               r.ID,
			Name:             r.Name,
			Ward:             r.Ward,
			Address:          r.Address,
			Type:             r.Type,
			Capacity:         r.Capacity,
			Lat:              r.Lat,
			Lon:              r.Lon,
			Phone:            r.Phone,
			OpeningCondition: r.OpeningCondition,
			DistanceKm:       r.DistanceKm,
		})
	}

	return out
}
