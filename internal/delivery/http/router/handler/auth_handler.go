// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"staffauth/internal/delivery/http/response"
	domainerrors "staffauth/internal/domain/errors"
	"staffauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// clientContext captures the request attributes bound into issued tokens.
func clientContext(c echo.Context) usecase.ClientContext {
	return usecase.ClientContext{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input, clientContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Authenticate handles the login request.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var input *usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input, clientContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh exchanges the refresh token in the Authorization header for a new
// access token. An absent or malformed header yields an empty 204 rather
// than an error body; a present-but-invalid token yields a bare 401.
func (h *AuthHandler) Refresh(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

	output, err := h.uc.Refresh(c.Request().Context(), authHeader, clientContext(c))
	if err != nil {
		if errors.Is(err, usecase.ErrBearerAbsent) {
			return c.NoContent(http.StatusNoContent)
		}
		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			return c.String(http.StatusUnauthorized, "invalid refresh token")
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
