/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/suparena/financeapi/errors"
)

// TokenHelper issues and decodes the signed bearer tokens carrying a
// subject claim and expiry.
type TokenHelper struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// NewTokenHelper constructs a token helper for an HMAC signing algorithm
// (HS256, HS384 or HS512). Anything else is a configuration error.
func NewTokenHelper(secretKey, algorithm string, expireMinutes int) (*TokenHelper, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, fmt.Errorf("secret key must be defined")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenHelper{
		secret: []byte(secretKey),
		method: method,
		expiry: time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed token for the given subject.
func (t *TokenHelper) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
	}

	token := jwt.NewWithClaims(t.method, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies a token and extracts its subject. Every decode failure
// (malformed token, wrong signing method, bad signature, expired claim,
// missing subject) is a TokenProcessing error; these are client faults,
// not internal ones.
func (t *TokenHelper) Decode(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != t.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", errors.NewTokenProcessingError("decode failed", err)
	}
	if !token.Valid {
		return "", errors.NewTokenProcessingError("token is invalid", nil)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", errors.NewTokenProcessingError("unexpected claims type", nil)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.NewTokenProcessingError("expected a 'sub' claim in the payload, but it was not found", nil)
	}
	return claims.Subject, nil
}
