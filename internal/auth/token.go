// Package auth issues and checks the signed session tokens carried in the
// "auth" cookie. Sign/Verify are the authoritative pair; DecodeUnverified
// exists only for the gatekeeper's routing fast path and must never gate
// access to data on its own.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

const (
	CookieName    = "auth"
	TokenValidity = 7 * 24 * time.Hour
)

type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	RoleID int    `json:"roleId"`
}

// UserID returns the numeric subject, 0 when absent or malformed.
func (c *Claims) UserID() int {
	id, _ := strconv.Atoi(c.Subject)
	return id
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Sign issues an HS256 token for the user, valid for TokenValidity.
func (s *TokenService) Sign(u *model.User) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		Email:  u.Email,
		Name:   u.FullName,
		RoleID: u.RoleID,
	}).SignedString(s.secret)
}

// Verify checks the signature and expiry and requires subject and email.
// Every failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

// DecodeUnverified reads the payload segment without checking the signature.
// Good enough to pick a redirect target, worthless as authentication.
func DecodeUnverified(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 {
		return nil, apperr.ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}
	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
