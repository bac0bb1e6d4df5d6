package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager([]byte("test-secret"), "federator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestNewJWTManager_Validation(t *testing.T) {
	if _, err := NewJWTManager(nil, "federator"); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewJWTManager([]byte("s"), ""); err == nil {
		t.Error("expected error for empty issuer")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newManager(t)

	token, err := m.GenerateToken("client-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "client-a" {
		t.Errorf("expected client-a, got %s", claims.ClientID)
	}
	if claims.Issuer != "federator" {
		t.Errorf("expected issuer federator, got %s", claims.Issuer)
	}
}

func TestValidateToken_Rejections(t *testing.T) {
	m := newManager(t)

	expired, err := m.GenerateToken("client-a", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other, _ := NewJWTManager([]byte("other-secret"), "federator")
	forged, err := other.GenerateToken("client-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrongIssuer, _ := NewJWTManager([]byte("test-secret"), "someone-else")
	misissued, err := wrongIssuer.GenerateToken("client-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", forged},
		{"wrong issuer", misissued},
		{"garbage", "not.a.token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tc.token); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestGenerateToken_EmptyClientID(t *testing.T) {
	if _, err := newManager(t).GenerateToken("", time.Hour); err == nil {
		t.Error("expected error for empty client id")
	}
}

func TestAuthenticate_MetadataHandling(t *testing.T) {
	m := newManager(t)
	token, err := m.GenerateToken("client-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	claims, err := authenticate(ctx, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "client-a" {
		t.Errorf("expected client-a, got %s", claims.ClientID)
	}

	if _, err := authenticate(context.Background(), m); status.Code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated without metadata, got %v", err)
	}

	empty := metadata.NewIncomingContext(context.Background(), metadata.MD{})
	if _, err := authenticate(empty, m); status.Code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated without token, got %v", err)
	}

	bad := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+strings.Repeat("x", 16)))
	if _, err := authenticate(bad, m); status.Code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated for malformed token, got %v", err)
	}
}

func TestClientIDFromContext(t *testing.T) {
	if _, ok := ClientIDFromContext(context.Background()); ok {
		t.Error("expected no client id on a bare context")
	}

	ctx := context.WithValue(context.Background(), ClaimsContextKey{}, &Claims{ClientID: "client-a"})
	id, ok := ClientIDFromContext(ctx)
	if !ok || id != "client-a" {
		t.Errorf("expected client-a, got %q (ok=%v)", id, ok)
	}
}
