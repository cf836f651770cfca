// Package auth implements the client side of the OAuth/OIDC authorization
// code flow against the external identity provider.  The provider owns the
// login protocol entirely; this service only redirects, exchanges the code
// and reads the resulting profile.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rghazali/fitfinder/internal/config"
)

// Identity is the profile the provider reports for an authenticated user.
// Sub is the stable subject that keys the users table.
type Identity struct {
	Sub      string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// Provider performs the code-flow round trips.
type Provider struct {
	baseURL      string
	clientID     string
	clientSecret string
	callbackURL  string
	http         *http.Client
}

// NewProvider builds a Provider from application configuration.  The
// configured domain may be a bare hostname or a full URL.
func NewProvider(cfg config.Config) *Provider {
	return NewProviderForBase(cfg.AuthDomain, cfg.AuthClientID, cfg.AuthClientSecret, cfg.AuthCallbackURL)
}

// NewProviderForBase is NewProvider with explicit values; tests use it to
// target a stub provider.
func NewProviderForBase(domain, clientID, clientSecret, callbackURL string) *Provider {
	base := domain
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return &Provider{
		baseURL:      strings.TrimRight(base, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		callbackURL:  callbackURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// NewState returns a random state value for CSRF protection of the
// authorize redirect.
func NewState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// AuthorizeURL builds the provider's authorize endpoint URL for the code
// flow with the openid/profile/email scopes.
func (p *Provider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.callbackURL)
	q.Set("scope", "openid profile email")
	q.Set("state", state)
	return p.baseURL + "/authorize?" + q.Encode()
}

// LogoutURL builds the provider's logout endpoint URL, sending the browser
// back to returnTo afterwards.
func (p *Provider) LogoutURL(returnTo string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("returnTo", returnTo)
	return p.baseURL + "/v2/logout?" + q.Encode()
}

// Exchange trades an authorization code for the provider's access token.
func (p *Provider) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", p.callbackURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("token exchange: decode: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange: empty access token")
	}
	return body.AccessToken, nil
}

// Userinfo fetches the authenticated user's profile.
func (p *Provider) Userinfo(ctx context.Context, accessToken string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/userinfo", nil)
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.http.Do(req)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo: unexpected status %d", resp.StatusCode)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return Identity{}, fmt.Errorf("userinfo: decode: %w", err)
	}
	if id.Sub == "" {
		return Identity{}, fmt.Errorf("userinfo: missing subject")
	}
	return id, nil
}
