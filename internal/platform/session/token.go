package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of a session token and its cookie.
const TokenTTL = 72 * time.Hour

type Role string

const (
	RoleFounder Role = "founder"
	RoleAdopter Role = "adopter"
)

func (r Role) Valid() bool {
	return r == RoleFounder || r == RoleAdopter
}

// Principal is the verified identity of a request. It is never persisted.
type Principal struct {
	UserID string
	Role   Role
}

// ErrInvalidToken covers every verification failure, expiry included.
var ErrInvalidToken = errors.New("invalid session token")

// Config defines how session tokens are signed and verified.
type Config struct {
	SigningKey []byte
	Issuer     string
	Now        func() time.Time
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	key    []byte
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

func NewTokenService(cfg Config) (*TokenService, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("session signing key is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}
	return &TokenService{
		key:    append([]byte(nil), cfg.SigningKey...),
		issuer: issuer,
		now:    now,
		parser: jwt.NewParser(options...),
	}, nil
}

// Issue signs a token for userID and role, valid for TokenTTL from now.
func (s *TokenService) Issue(userID string, role Role) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("session user id is required")
	}
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("unsupported session role %q", role)
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(TokenTTL)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Role:   role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm and expiry and returns the principal.
// The token is valid while now is strictly before its expiry.
func (s *TokenService) Verify(token string) (Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, ErrInvalidToken
	}

	var claims sessionClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Subject != claims.UserID || !claims.Role.Valid() {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: claims.UserID, Role: claims.Role}, nil
}
