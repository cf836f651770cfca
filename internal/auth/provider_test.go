package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizeURLCarriesCodeFlowParams(t *testing.T) {
	p := NewProviderForBase("idp.example.com", "client-1", "secret", "https://app.test/callback")
	raw := p.AuthorizeURL("state123")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse authorize url: %v", err)
	}
	if u.Scheme != "https" || u.Host != "idp.example.com" || u.Path != "/authorize" {
		t.Fatalf("authorize endpoint: %q", raw)
	}
	q := u.Query()
	for key, want := range map[string]string{
		"response_type": "code",
		"client_id":     "client-1",
		"redirect_uri":  "https://app.test/callback",
		"scope":         "openid profile email",
		"state":         "state123",
	} {
		if got := q.Get(key); got != want {
			t.Fatalf("%s: got %q, want %q", key, got, want)
		}
	}
}

func TestProviderKeepsExplicitScheme(t *testing.T) {
	p := NewProviderForBase("http://localhost:9999/", "c", "s", "cb")
	if got := p.AuthorizeURL("x"); !strings.HasPrefix(got, "http://localhost:9999/authorize?") {
		t.Fatalf("base handling: %q", got)
	}
}

func TestExchangePostsFormAndReturnsToken(t *testing.T) {
	var seen url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/oauth/token" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		seen = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	p := NewProviderForBase(srv.URL, "client-1", "hush", "https://app.test/callback")
	tok, err := p.Exchange(context.Background(), "code-9")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if tok != "tok-1" {
		t.Fatalf("token: got %q", tok)
	}
	if seen.Get("grant_type") != "authorization_code" || seen.Get("code") != "code-9" ||
		seen.Get("client_secret") != "hush" {
		t.Fatalf("form: %v", seen)
	}
}

func TestExchangeRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewProviderForBase(srv.URL, "c", "s", "cb")
	if _, err := p.Exchange(context.Background(), "code"); err == nil {
		t.Fatalf("expected error for empty access token")
	}
}

func TestUserinfoSendsBearerAndRequiresSub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization header: %q", got)
		}
		w.Write([]byte(`{"sub":"auth0|abc","email":"a@b.test","name":"Alex","nickname":"alex"}`))
	}))
	defer srv.Close()

	p := NewProviderForBase(srv.URL, "c", "s", "cb")
	id, err := p.Userinfo(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("userinfo: %v", err)
	}
	if id.Sub != "auth0|abc" || id.Email != "a@b.test" || id.Nickname != "alex" {
		t.Fatalf("identity: %+v", id)
	}
}

func TestUserinfoMissingSubjectFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"a@b.test"}`))
	}))
	defer srv.Close()

	p := NewProviderForBase(srv.URL, "c", "s", "cb")
	if _, err := p.Userinfo(context.Background(), "tok"); err == nil {
		t.Fatalf("expected error for missing sub")
	}
}

func TestNewStateIsUnique(t *testing.T) {
	a, err := NewState()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	b, err := NewState()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if a == b || len(a) != 32 {
		t.Fatalf("states must be 32 hex chars and unique: %q %q", a, b)
	}
}
