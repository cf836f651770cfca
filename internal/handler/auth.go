package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/auth"
	"github.com/rghazali/fitfinder/internal/config"
	"github.com/rghazali/fitfinder/internal/utils"
)

// stateCookie carries the CSRF state between the authorize redirect and the
// callback.
const stateCookie = "auth_state"

// identityProvider is the slice of auth.Provider the handler needs; tests
// substitute a stub.
type identityProvider interface {
	AuthorizeURL(state string) string
	LogoutURL(returnTo string) string
	Exchange(ctx context.Context, code string) (string, error)
	Userinfo(ctx context.Context, accessToken string) (auth.Identity, error)
}

// userDirectory records logins; implemented by repository.UserRepo.
type userDirectory interface {
	UpsertLogin(ctx context.Context, externalID, email, name, nickname string) error
}

// AuthHandler implements the login round trip against the external identity
// provider and mints the service's own session tokens.
type AuthHandler struct {
	Cfg      config.Config
	Provider identityProvider
	Users    userDirectory
}

func NewAuthHandler(cfg config.Config, p identityProvider, users userDirectory) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Provider: p, Users: users}
}

// Login generates a state value, stores it in a short-lived cookie and
// redirects the browser to the provider's authorize endpoint.
func (h *AuthHandler) Login(c echo.Context) error {
	state, err := auth.NewState()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not start login")
	}
	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.Provider.AuthorizeURL(state))
}

// Callback completes the code flow: it verifies the state, exchanges the
// code, reads the profile, upserts the user row and returns a session
// token.
func (h *AuthHandler) Callback(c echo.Context) error {
	state := c.QueryParam("state")
	cookie, err := c.Cookie(stateCookie)
	if err != nil || state == "" || cookie.Value != state {
		return fail(c, http.StatusBadRequest, "state mismatch")
	}
	code := c.QueryParam("code")
	if code == "" {
		return fail(c, http.StatusBadRequest, "missing code")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	accessToken, err := h.Provider.Exchange(ctx, code)
	if err != nil {
		return fail(c, http.StatusBadGateway, "code exchange failed")
	}
	id, err := h.Provider.Userinfo(ctx, accessToken)
	if err != nil {
		return fail(c, http.StatusBadGateway, "profile fetch failed")
	}

	if err := h.Users.UpsertLogin(ctx, id.Sub, id.Email, id.Name, id.Nickname); err != nil {
		return fail(c, http.StatusInternalServerError, "login record failed")
	}

	session, err := utils.NewSessionToken(h.Cfg.JWTSecret, id.Sub, id.Email, id.Name, h.Cfg.SessionTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "session issue failed")
	}

	// State cookie is single-use.
	c.SetCookie(&http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	return c.JSON(http.StatusOK, echo.Map{
		"token":   session.Token,
		"expires": session.Exp,
		"user": echo.Map{
			"user_id":  id.Sub,
			"email":    id.Email,
			"name":     id.Name,
			"nickname": id.Nickname,
		},
	})
}

// Logout redirects the browser to the provider's logout endpoint.  The
// session token itself is stateless and simply expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	returnTo := strings.TrimSpace(c.QueryParam("return_to"))
	if returnTo == "" {
		returnTo = "/"
	}
	return c.Redirect(http.StatusFound, h.Provider.LogoutURL(returnTo))
}

// Me returns the authenticated session's claims.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"email":   c.Get("email"),
	})
}
