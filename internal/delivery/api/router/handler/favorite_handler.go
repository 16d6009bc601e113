package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hazardmap/internal/delivery/api/response"
	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// CreateFavoriteRequest represents the request body for saving a favorite
type CreateFavoriteRequest struct {
	Lat             *float64 `json:"lat" validate:"required"`
	Lon             *float64 `json:"lon" validate:"required"`
	Title           string   `json:"title" validate:"required,max=200"`
	TerrainType     *string  `json:"terrain_type"`
	RiskScore       *int     `json:"risk_score"`
	RiskDescription *string  `json:"risk_description"`
	Explanation     *string  `json:"explanation"`
	SimpleWarnings  *string  `json:"simple_warnings"`
	NearestShelter  *string  `json:"nearest_shelter"`
}

// FavoriteResponse is a stored favorite as returned to its owner.
type FavoriteResponse struct {
	ID              int64     `json:"id"`
	Lat             float64   `json:"lat"`
	Lon             float64   `json:"lon"`
	Title           string    `json:"title"`
	TerrainType     *string   `json:"terrain_type"`
	RiskScore       *int      `json:"risk_score"`
	RiskDescription *string   `json:"risk_description"`
	Explanation     *string   `json:"explanation"`
	SimpleWarnings  *string   `json:"simple_warnings"`
	NearestShelter  *string   `json:"nearest_shelter"`
	DeviceID        *string   `json:"device_id"`
	UserID          *int64    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateFavorite handles POST /favorites
func (h *FavoriteHandler) CreateFavorite(c echo.Context) error {
	var req CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	favorite, err := h.favoriteUC.Create(c.Request().Context(), deliverycontext.GetIdentity(c), &usecase.CreateFavoriteInput{
		Lat:             *req.Lat,
		Lon:             *req.Lon,
		Title:           req.Title,
		TerrainType:     req.TerrainType,
		RiskScore:       req.RiskScore,
		RiskDescription: req.RiskDescription,
		Explanation:     req.Explanation,
		SimpleWarnings:  req.SimpleWarnings,
		NearestShelter:  req.NearestShelter,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFavoriteResponse(favorite))
}

// ListFavorites handles GET /favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUC.List(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, toFavoriteResponse(f))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteFavorite handles DELETE /favorites/:id
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid favorite ID format")
	}

	if err := h.favoriteUC.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

func toFavoriteResponse(f *entity.Favorite) *FavoriteResponse {
	return &FavoriteResponse{
		ID:              f.ID,
		Lat:             f.Lat,
		Lon:             f.Lon,
		Title:           f.Title,
		TerrainType:     f.TerrainType,
		RiskScore:       f.RiskScore,
		RiskDescription: f.RiskDescription,
		Explanation:     f.Explanation,
		SimpleWarnings:  f.SimpleWarnings,
		NearestShelter:  f.NearestShelter,
		DeviceID:        f.OwnerDeviceID,
		UserID:          f.OwnerUserID,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}
