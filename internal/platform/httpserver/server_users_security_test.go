package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	accountservice "launchpad/contexts/identity-access/account-service"
	startupservice "launchpad/contexts/startup-marketplace/startup-service"
	"launchpad/internal/app/accountdirectory"
	"launchpad/internal/platform/session"
)

const testSigningKey = "test-signing-key"

func newTestTokens(t *testing.T, now func() time.Time) *session.TokenService {
	t.Helper()
	tokens, err := session.NewTokenService(session.Config{
		SigningKey: []byte(testSigningKey),
		Issuer:     "launchpad",
		Now:        now,
	})
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return tokens
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	accounts := accountservice.NewInMemoryModule(slog.Default())
	startups := startupservice.NewInMemoryModule(accountdirectory.New(accounts.Lookup), slog.Default())
	return New(accounts, startups, newTestTokens(t, nil), slog.Default(), ":0", false)
}

func doJSON(t *testing.T, server *Server, method string, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		payload = encoded
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatalf("expected %s cookie, headers=%v", session.CookieName, rr.Header())
	return nil
}

func signup(t *testing.T, server *Server, name string, email string, role string, interests ...string) (string, *http.Cookie) {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/users/signup", map[string]any{
		"fullName":  name,
		"email":     email,
		"password":  "correct-horse",
		"role":      role,
		"interests": interests,
	}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d body=%s", email, rr.Code, rr.Body.String())
	}
	var resp struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup: %v", err)
	}
	return resp.UserID, sessionCookie(t, rr)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var resp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rr.Body.String(), err)
	}
	return resp.Code, resp.Message
}

func TestSignupSetsSessionCookieThatAuthenticatesProfile(t *testing.T) {
	server := newTestServer(t)

	userID, cookie := signup(t, server, "Asha Rao", "asha@example.com", "founder")
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteStrictMode || cookie.Path != "/" {
		t.Fatalf("unexpected cookie attributes %+v", cookie)
	}
	if cookie.MaxAge != 259200 {
		t.Fatalf("expected 72h max-age, got %d", cookie.MaxAge)
	}
	if cookie.Secure {
		t.Fatalf("expected non-secure cookie outside production")
	}

	rr := doJSON(t, server, http.MethodGet, "/users/profile", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var profile map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile["userId"] != userID || profile["email"] != "asha@example.com" || profile["role"] != "founder" {
		t.Fatalf("unexpected profile %v", profile)
	}
	if _, leaked := profile["passwordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestLoginIssuesWorkingCookie(t *testing.T) {
	server := newTestServer(t)
	userID, _ := signup(t, server, "Ben", "ben@example.com", "adopter")

	rr := doJSON(t, server, http.MethodPost, "/users/login", map[string]string{
		"email":    "ben@example.com",
		"password": "correct-horse",
	}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	profile := doJSON(t, server, http.MethodGet, "/users/profile", nil, sessionCookie(t, rr))
	if profile.Code != http.StatusOK || !bytes.Contains(profile.Body.Bytes(), []byte(userID)) {
		t.Fatalf("expected profile for %s, got %d body=%s", userID, profile.Code, profile.Body.String())
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	server := newTestServer(t)
	signup(t, server, "Cara", "cara@example.com", "adopter")

	for name, body := range map[string]map[string]string{
		"wrong password": {"email": "cara@example.com", "password": "nope"},
		"unknown email":  {"email": "nobody@example.com", "password": "correct-horse"},
	} {
		rr := doJSON(t, server, http.MethodPost, "/users/login", body, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "invalid_credentials" {
			t.Fatalf("%s: expected invalid_credentials, got %s", name, code)
		}
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("%s: expected no cookie on failed login", name)
		}
	}
}

func TestSignupDuplicateEmailIsConflict(t *testing.T) {
	server := newTestServer(t)
	signup(t, server, "Dana", "dana@example.com", "founder")

	rr := doJSON(t, server, http.MethodPost, "/users/signup", map[string]string{
		"fullName": "Dana Again",
		"email":    "dana@example.com",
		"password": "another-pass",
		"role":     "adopter",
	}, nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if code, _ := decodeError(t, rr); code != "conflict" {
		t.Fatalf("expected conflict code, got %s", code)
	}
}

func TestSignupValidation(t *testing.T) {
	server := newTestServer(t)

	cases := map[string]any{
		"missing password": map[string]string{"fullName": "E", "email": "e@example.com", "role": "founder"},
		"bad role":         map[string]string{"fullName": "E", "email": "e@example.com", "password": "pw", "role": "admin"},
	}
	for name, body := range cases {
		rr := doJSON(t, server, http.MethodPost, "/users/signup", body, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "validation_failed" {
			t.Fatalf("%s: expected validation_failed, got %s", name, code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewReader([]byte(`{"fullName":`)))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed json: expected 400, got %d", rr.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	server := newTestServer(t)

	rr := doJSON(t, server, http.MethodPost, "/users/logout", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	cookie := sessionCookie(t, rr)
	if cookie.Value != "" || cookie.MaxAge >= 0 || !cookie.Expires.Equal(time.Unix(0, 0)) {
		t.Fatalf("expected expired cookie, got %+v", cookie)
	}
}

func TestProfileRequiresSession(t *testing.T) {
	server := newTestServer(t)

	rr := doJSON(t, server, http.MethodGet, "/users/profile", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code, _ := decodeError(t, rr); code != "unauthenticated" {
		t.Fatalf("expected unauthenticated, got %s", code)
	}

	rr = doJSON(t, server, http.MethodGet, "/users/profile", nil, &http.Cookie{Name: session.CookieName, Value: "forged.token.value"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("forged token: expected 401, got %d", rr.Code)
	}
}

func TestExpiredSessionIsUnauthenticated(t *testing.T) {
	accounts := accountservice.NewInMemoryModule(nil)
	startups := startupservice.NewInMemoryModule(accountdirectory.New(accounts.Lookup), nil)
	now := time.Now().UTC()
	clock := func() time.Time { return now }
	server := New(accounts, startups, newTestTokens(t, clock), nil, ":0", false)

	_, cookie := signup(t, server, "Eve", "eve@example.com", "adopter")
	now = now.Add(session.TokenTTL)

	rr := doJSON(t, server, http.MethodGet, "/users/profile", nil, cookie)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after expiry, got %d", rr.Code)
	}
}

func TestProfileForVanishedIdentityIsNotFound(t *testing.T) {
	server := newTestServer(t)
	token, _, err := server.tokens.Issue("ghost-user", session.RoleAdopter)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rr := doJSON(t, server, http.MethodGet, "/users/profile", nil, &http.Cookie{Name: session.CookieName, Value: token})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSecureCookieInProduction(t *testing.T) {
	accounts := accountservice.NewInMemoryModule(nil)
	startups := startupservice.NewInMemoryModule(accountdirectory.New(accounts.Lookup), nil)
	server := New(accounts, startups, newTestTokens(t, nil), nil, ":0", true)

	_, cookie := signup(t, server, "Finn", "finn@example.com", "founder")
	if !cookie.Secure {
		t.Fatalf("expected secure cookie in production")
	}
}

func TestUpdateInterestsIsAdopterOnly(t *testing.T) {
	server := newTestServer(t)
	_, founderCookie := signup(t, server, "Gia", "gia@example.com", "founder")
	_, adopterCookie := signup(t, server, "Hal", "hal@example.com", "adopter")

	body := map[string][]string{"interests": {" AI ", "SaaS", "AI"}}
	rr := doJSON(t, server, http.MethodPut, "/users/interests", body, founderCookie)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("founder: expected 403, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPut, "/users/interests", body, adopterCookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("adopter: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var profile struct {
		Interests []string `json:"interests"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if len(profile.Interests) != 2 || profile.Interests[0] != "AI" || profile.Interests[1] != "SaaS" {
		t.Fatalf("expected normalized interests, got %v", profile.Interests)
	}
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t)
	rr := doJSON(t, server, http.MethodGet, "/healthz", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
