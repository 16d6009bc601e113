package handler

import (
	"log/slog"
	"net/http"

	"hazardmap/internal/delivery/api/response"
	"hazardmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RiskHandlerParams holds dependencies for RiskHandler, injected by Fx.
type RiskHandlerParams struct {
	fx.In

	RiskUC usecase.RiskUsecase
	Logger *slog.Logger
}

// RiskHandler serves hazard risk lookups.
type RiskHandler struct {
	riskUC usecase.RiskUsecase
	logger *slog.Logger
}

// NewRiskHandler is the constructor for RiskHandler
func NewRiskHandler(params RiskHandlerParams) *RiskHandler {
	return &RiskHandler{
		riskUC: params.RiskUC,
		logger: params.Logger,
	}
}

// RiskResponse is the body of GET /risk. overall_risk and distance_m are
// null when status is no_match.
type RiskResponse struct {
	Status          string   `json:"status"`
	OverallRisk     *int     `json:"overall_risk"`
	RiskDescription string   `json:"risk_description"`
	Explanation     string   `json:"explanation"`
	DistanceM       *float64 `json:"distance_m"`
	Lang            string   `json:"lang"`
}

// GetRisk handles GET /risk?lat=&lon=
func (h *RiskHandler) GetRisk(c echo.Context) error {
	q, err := bindCoordinates(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lon must be numbers")
	}

	result, err := h.riskUC.Lookup(c.Request().Context(), &usecase.RiskLookupInput{
		Lat:            q.Lat,
		Lon:            q.Lon,
		AcceptLanguage: c.Request().Header.Get("Accept-Language"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RiskResponse{
		Status:          string(result.Status),
		OverallRisk:     result.OverallRisk,
		RiskDescription: result.RiskDescription,
		Explanation:     result.Explanation,
		DistanceM:       result.DistanceM,
		Lang:            result.Language.String(),
	})
}
