package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an upload token when none is configured.
const DefaultTokenTTL = time.Hour

// uploadClaims is the payload of an upload token.
type uploadClaims struct {
	// Scope is the bucket the token authorizes uploads into.
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Auth issues and verifies upload tokens for one set of credentials.
type Auth struct {
	accessKey string
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAuth creates the authentication helper from the account credentials.
func NewAuth(accessKey, secretKey string, ttl time.Duration) (*Auth, error) {
	if strings.TrimSpace(accessKey) == "" || secretKey == "" {
		return nil, errors.New("access key and secret key are required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Auth{
		accessKey: accessKey,
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// AccessKey returns the access key the helper signs for.
func (a *Auth) AccessKey() string {
	return a.accessKey
}

// UploadToken returns a signed token that authorizes uploads into bucket.
func (a *Auth) UploadToken(bucket string) (string, error) {
	if strings.TrimSpace(bucket) == "" {
		return "", newError("token", bucket, "", ErrInvalidRequest, errors.New("bucket is required"))
	}

	now := a.now()
	claims := uploadClaims{
		Scope: bucket,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.accessKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign upload token: %w", err)
	}
	return token, nil
}

// VerifyUploadToken checks the signature and expiry of token and returns the
// bucket it is scoped to.
func (a *Auth) VerifyUploadToken(token string) (string, error) {
	claims := &uploadClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", newError("token", "", "", ErrAccessDenied, err)
	}

	if claims.Subject != a.accessKey {
		return "", newError("token", claims.Scope, "", ErrAccessDenied, errors.New("token issued for another access key"))
	}
	if claims.Scope == "" {
		return "", newError("token", "", "", ErrAccessDenied, errors.New("token has no scope"))
	}

	return claims.Scope, nil
}
