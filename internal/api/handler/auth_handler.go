package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

// AuthHandler exposes the session lifecycle: login, logout, and the current
// session lookup the screens use to restore state.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	UserID   string `json:"user_id,omitempty"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	Redirect string          `json:"redirect"`
	User     sessionResponse `json:"user"`
}

// Login performs a password grant against the auth upstream and opens the
// gateway session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.sessions.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    result.Token,
		Redirect: result.Redirect,
		User:     toSessionResponse(result.Session),
	})
}

// Logout clears the session.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the active session, or 401 when none exists.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := h.sessions.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(*sess))
}

func toSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{
		Username: s.Username,
		Name:     s.DisplayName(),
		Role:     string(s.Role),
		UserID:   s.UserID,
	}
}
