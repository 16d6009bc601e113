// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"hazardmap/internal/delivery/api/response"
	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountUsecase
	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler holds dependencies for account and claim handlers.
type AuthHandler struct {
	accountUC  usecase.AccountUsecase
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC:  params.AccountUC,
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,password_bytes"`
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	DeviceID string  `json:"device_id" validate:"omitempty,max=128"`
}

// RegisterDeviceRequest registers an anonymous device.
type RegisterDeviceRequest struct {
	DeviceID string  `json:"device_id" validate:"required,max=128"`
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
}

// LoginRequest accepts either a JSON body with email or an OAuth2 password
// form where the email travels as username.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse is returned by login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterResponse is returned by register.
type RegisterResponse struct {
	ID          int64  `json:"id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Transferred int64  `json:"transferred"`
}

// ClaimResponse is returned by claim_device.
type ClaimResponse struct {
	Status      string `json:"status"`
	Transferred int64  `json:"transferred"`
}

// DeviceAccountResponse is returned by device registration.
type DeviceAccountResponse struct {
	Status   string  `json:"status"`
	ID       int64   `json:"id"`
	DeviceID string  `json:"device_id"`
	Nickname *string `json:"nickname"`
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Nickname *string `json:"nickname"`
	DeviceID *string `json:"device_id"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		DeviceID: strings.TrimSpace(req.DeviceID),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &RegisterResponse{
		ID:          output.Account.ID,
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		Transferred: output.Transferred,
	})
}

// RegisterDevice handles POST /users/register
func (h *AuthHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device registration input")
	}

	req.DeviceID = strings.TrimSpace(req.DeviceID)
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	account, err := h.accountUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		DeviceID: req.DeviceID,
		Nickname: req.Nickname,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DeviceAccountResponse{
		Status:   "ok",
		ID:       account.ID,
		DeviceID: req.DeviceID,
		Nickname: account.Nickname,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if req.Email == "" {
		req.Email = req.Username
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// ClaimDevice handles POST /auth/claim_device
func (h *AuthHandler) ClaimDevice(c echo.Context) error {
	transferred, err := h.identityUC.ClaimDevice(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ClaimResponse{
		Status:      "ok",
		Transferred: transferred,
	})
}

// Me handles GET /me
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := h.accountUC.Profile(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(account))
}

func toProfileResponse(a *entity.Account) *ProfileResponse {
	return &ProfileResponse{
		ID:       a.ID,
		Email:    a.Email,
		Nickname: a.Nickname,
		DeviceID: a.DeviceID,
	}
}
