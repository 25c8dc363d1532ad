package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims is the identity carried inside a signed token.
type AuthClaims struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// GenerateAuthToken signs an HS256 token with the user id and admin flag.
// Tokens carry no expiry; verification is purely signature-based.
func GenerateAuthToken(secret string, userID uuid.UUID, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"_id":     userID.String(),
		"isAdmin": isAdmin,
		"iat":     time.Now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseAuthToken verifies the signature and extracts the identity claims
func ParseAuthToken(secret, raw string) (*AuthClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	idStr, ok := claims["_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid token claims")
	}

	isAdmin, _ := claims["isAdmin"].(bool)

	return &AuthClaims{UserID: userID, IsAdmin: isAdmin}, nil
}
