package auth

import "context"

type contextKey string

const claimsKey contextKey = "fittracker-auth-claims"

// WithClaims attaches the authenticated caller to ctx for downstream handlers.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// FromContext returns the caller attached by WithClaims; ok is false for anonymous requests.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}
