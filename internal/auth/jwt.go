// Package auth issues and validates the HS256 bearer tokens that
// identify federation clients on the gRPC surface.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	vault "github.com/hashicorp/vault/api"
)

// Claims carries the client identity inside a federation token.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates federation tokens with a shared
// HS256 secret.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a manager over the given shared secret.
func NewJWTManager(secret []byte, issuer string) (*JWTManager, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret cannot be empty")
	}
	if issuer == "" {
		return nil, fmt.Errorf("jwt issuer cannot be empty")
	}
	return &JWTManager{secret: secret, issuer: issuer}, nil
}

// NewJWTManagerFromVault loads the shared secret from the KV v2 entry
// at vaultPath (expects a "secret" field under data).
func NewJWTManagerFromVault(ctx context.Context, client *vault.Client, vaultPath, issuer string) (*JWTManager, error) {
	if client == nil {
		return nil, fmt.Errorf("vault client is required")
	}

	entry, err := client.Logical().ReadWithContext(ctx, vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt secret from vault: %w", err)
	}
	if entry == nil || entry.Data == nil {
		return nil, fmt.Errorf("no jwt secret at vault path %s", vaultPath)
	}

	data, ok := entry.Data["data"].(map[string]interface{})
	if !ok {
		data = entry.Data
	}
	secret, ok := data["secret"].(string)
	if !ok || secret == "" {
		return nil, fmt.Errorf("vault path %s has no secret field", vaultPath)
	}

	return NewJWTManager([]byte(secret), issuer)
}

// GenerateToken issues a token identifying clientID, valid for the
// given duration.
func (m *JWTManager) GenerateToken(clientID string, validity time.Duration) (string, error) {
	if clientID == "" {
		return "", fmt.Errorf("client id cannot be empty")
	}

	now := time.Now()
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateToken parses and verifies a token, returning its claims.
func (m *JWTManager) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.ClientID == "" {
		return nil, fmt.Errorf("token carries no client id")
	}
	return claims, nil
}
