package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ClaimsContextKey keys the authenticated claims in a request context.
type ClaimsContextKey struct{}

// ClaimsFromContext extracts the authenticated claims placed by the
// interceptors.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey{}).(*Claims)
	return claims, ok
}

// ClientIDFromContext returns the authenticated client identity.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.ClientID, true
}

// authenticate validates the bearer token in the incoming metadata.
func authenticate(ctx context.Context, m *JWTManager) (*Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing request metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	raw := strings.TrimPrefix(values[0], "Bearer ")
	claims, err := m.ValidateToken(raw)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	return claims, nil
}

// UnaryServerInterceptor authenticates every unary request and stores
// the claims on the context.
func UnaryServerInterceptor(m *JWTManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		claims, err := authenticate(ctx, m)
		if err != nil {
			return nil, err
		}
		return handler(context.WithValue(ctx, ClaimsContextKey{}, claims), req)
	}
}

// StreamServerInterceptor authenticates every streaming request and
// stores the claims on the stream context.
func StreamServerInterceptor(m *JWTManager) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		claims, err := authenticate(ss.Context(), m)
		if err != nil {
			return err
		}
		return handler(srv, &claimsStream{ServerStream: ss, claims: claims})
	}
}

// claimsStream overrides Context to expose the authenticated claims.
type claimsStream struct {
	grpc.ServerStream
	claims *Claims
}

func (s *claimsStream) Context() context.Context {
	return context.WithValue(s.ServerStream.Context(), ClaimsContextKey{}, s.claims)
}
