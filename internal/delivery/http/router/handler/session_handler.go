package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "staffauth/internal/delivery/context"
	"staffauth/internal/delivery/http/response"
	"staffauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the caller's token history and bulk revocation.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionView is the wire representation of a token record. The signed
// token string itself is never echoed back.
type sessionView struct {
	ID        string `json:"id"`
	TokenType string `json:"tokenType"`
	Expired   bool   `json:"expired"`
	Revoked   bool   `json:"revoked"`
	CreatedAt string `json:"createdAt"`
}

// ListSessions returns the caller's token issuance history. With
// ?active=true only the records that still authorise requests are returned.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	list := h.uc.ListUserTokens
	if c.QueryParam("active") == "true" {
		list = h.uc.ListActiveUserTokens
	}

	tokens, err := list(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]sessionView, 0, len(tokens))
	for _, token := range tokens {
		views = append(views, sessionView{
			ID:        token.ID.String(),
			TokenType: string(token.TokenType),
			Expired:   token.Expired,
			Revoked:   token.Revoked,
			CreatedAt: token.CreatedAt.Format(time.RFC3339),
		})
	}

	return response.Success(c, http.StatusOK, views, "Sessions retrieved successfully")
}

// RevokeSessions force-revokes every currently-valid token for the caller.
func (h *SessionHandler) RevokeSessions(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	revoked, err := h.uc.RevokeAllSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"revoked": revoked}, "Sessions revoked successfully")
}
