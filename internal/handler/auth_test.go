package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rghazali/fitfinder/internal/auth"
	"github.com/rghazali/fitfinder/internal/config"
)

type stubProvider struct {
	exchangeErr error
	identity    auth.Identity
}

func (s *stubProvider) AuthorizeURL(state string) string {
	return "https://idp.test/authorize?state=" + state
}

func (s *stubProvider) LogoutURL(returnTo string) string {
	return "https://idp.test/v2/logout?returnTo=" + returnTo
}

func (s *stubProvider) Exchange(ctx context.Context, code string) (string, error) {
	if s.exchangeErr != nil {
		return "", s.exchangeErr
	}
	return "access-" + code, nil
}

func (s *stubProvider) Userinfo(ctx context.Context, accessToken string) (auth.Identity, error) {
	return s.identity, nil
}

type recordingDirectory struct {
	logins []auth.Identity
	err    error
}

func (r *recordingDirectory) UpsertLogin(ctx context.Context, externalID, email, name, nickname string) error {
	if r.err != nil {
		return r.err
	}
	r.logins = append(r.logins, auth.Identity{Sub: externalID, Email: email, Name: name, Nickname: nickname})
	return nil
}

func authTestHandler(p identityProvider, users userDirectory) *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: "secret", SessionTTLMin: 60}, p, users)
}

func TestLoginRedirectsWithStateCookie(t *testing.T) {
	h := authTestHandler(&stubProvider{}, &recordingDirectory{})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/login", nil)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	res := rec.Result()
	var state string
	for _, ck := range res.Cookies() {
		if ck.Name == stateCookie {
			state = ck.Value
		}
	}
	if state == "" {
		t.Fatalf("state cookie not set")
	}
	if loc := rec.Header().Get("Location"); loc != "https://idp.test/authorize?state="+state {
		t.Fatalf("redirect target: %q", loc)
	}
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	h := authTestHandler(&stubProvider{}, &recordingDirectory{})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/callback?state=evil&code=x", nil)
	c.Request().AddCookie(&http.Cookie{Name: stateCookie, Value: "good"})

	if err := h.Callback(c); err != nil {
		t.Fatalf("callback: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCallbackUpsertsAndMintsSession(t *testing.T) {
	dir := &recordingDirectory{}
	h := authTestHandler(&stubProvider{identity: auth.Identity{
		Sub:      "auth0|abc",
		Email:    "a@b.test",
		Name:     "Alex",
		Nickname: "alex",
	}}, dir)

	c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/callback?state=s1&code=c1", nil)
	c.Request().AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})
	if err := h.Callback(c); err != nil {
		t.Fatalf("callback: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body=%s", rec.Code, rec.Body.String())
	}

	if len(dir.logins) != 1 || dir.logins[0].Sub != "auth0|abc" {
		t.Fatalf("upsert not recorded: %+v", dir.logins)
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			UserID string `json:"user_id"`
			Email  string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.User.UserID != "auth0|abc" || body.User.Email != "a@b.test" {
		t.Fatalf("user payload: %+v", body.User)
	}

	tok, err := jwt.Parse(body.Token, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("session token invalid: %v", err)
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub != "auth0|abc" {
		t.Fatalf("subject claim: %q, %v", sub, err)
	}
}

func TestCallbackRepeatLoginUpsertsAgain(t *testing.T) {
	dir := &recordingDirectory{}
	h := authTestHandler(&stubProvider{identity: auth.Identity{Sub: "auth0|abc", Email: "a@b.test"}}, dir)

	for i := 0; i < 2; i++ {
		c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/callback?state=s1&code=c1", nil)
		c.Request().AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})
		if err := h.Callback(c); err != nil {
			t.Fatalf("callback %d: %v", i, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("callback %d status: %d", i, rec.Code)
		}
	}
	if len(dir.logins) != 2 {
		t.Fatalf("expected an upsert per login, got %d", len(dir.logins))
	}
}

func TestCallbackExchangeFailureIs502(t *testing.T) {
	h := authTestHandler(&stubProvider{exchangeErr: errors.New("idp down")}, &recordingDirectory{})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/callback?state=s1&code=c1", nil)
	c.Request().AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})

	if err := h.Callback(c); err != nil {
		t.Fatalf("callback: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestLogoutRedirectsToProvider(t *testing.T) {
	h := authTestHandler(&stubProvider{}, &recordingDirectory{})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/auth/logout?return_to=/bye", nil)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://idp.test/v2/logout?returnTo=/bye" {
		t.Fatalf("redirect target: %q", loc)
	}
}
