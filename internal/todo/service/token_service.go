package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/VeerKakar17/calendar-todo-list/internal/todo/service TokenCodec

import (
	"fmt"
	"time"

	todoerror "github.com/VeerKakar17/calendar-todo-list/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates the two credential slots so a token minted for
// one slot can never be accepted in the other.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Kind   string `json:"kind"`
}

// ExpiredAt reports whether the claims are stale at the given instant.
// Claims without an expiry count as expired.
func (c *SessionClaims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

type TokenCodec interface {
	Mint(userID string, kind TokenKind) (string, error)
	MintWithExpiry(userID string, kind TokenKind, expiresAt time.Time) (string, error)
	Decode(tokenString string, kind TokenKind) (*SessionClaims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}

// TokenService signs and verifies session tokens with HS256. The signing
// key is fixed at construction; additional verify-only keys can be
// registered under their key id so tokens signed before a rotation keep
// validating.
type TokenService struct {
	keys        map[string][]byte
	activeKeyID string
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewTokenService(secret, keyID string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		keys:        map[string][]byte{keyID: []byte(secret)},
		activeKeyID: keyID,
		accessTTL:   time.Duration(accessMinutes) * time.Minute,
		refreshTTL:  time.Duration(refreshMinutes) * time.Minute,
	}
}

// WithVerificationKey registers a retired secret under its key id.
func (ts *TokenService) WithVerificationKey(keyID, secret string) *TokenService {
	ts.keys[keyID] = []byte(secret)
	return ts
}

func (ts *TokenService) Mint(userID string, kind TokenKind) (string, error) {
	return ts.MintWithExpiry(userID, kind, time.Now().Add(ts.ttlFor(kind)))
}

func (ts *TokenService) MintWithExpiry(userID string, kind TokenKind, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		Kind:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = ts.activeKeyID

	return token.SignedString(ts.keys[ts.activeKeyID])
}

// Decode verifies the signature and kind of tokenString and returns its
// claims. Expiry is deliberately not enforced here: the session layer needs
// to tell "cryptographically valid but stale" apart from "garbage", and it
// checks staleness itself via SessionClaims.ExpiredAt. Every failure mode
// collapses into ErrInvalidToken so callers cannot distinguish malformed
// from mis-signed input.
func (ts *TokenService) Decode(tokenString string, kind TokenKind) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ts.verificationKey, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return nil, todoerror.ErrInvalidToken
	}

	if claims.Kind != string(kind) {
		return nil, todoerror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) verificationKey(token *jwt.Token) (interface{}, error) {
	// Only the HMAC family is acceptable; anything else is an alg
	// confusion attempt.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	keyID := ts.activeKeyID
	if kid, ok := token.Header["kid"].(string); ok {
		keyID = kid
	}

	key, ok := ts.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", keyID)
	}

	return key, nil
}

func (ts *TokenService) ttlFor(kind TokenKind) time.Duration {
	if kind == TokenKindRefresh {
		return ts.refreshTTL
	}
	return ts.accessTTL
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessTTL
}

func (ts *TokenService) RefreshTokenTTL() time.Duration {
	return ts.refreshTTL
}
