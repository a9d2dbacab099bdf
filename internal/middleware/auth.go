package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/sharemates/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// ParticipantIDKey is the context key for the caller's participant ID.
	ParticipantIDKey contextKey = "participant_id"
	// HouseholdIDKey is the context key for the caller's household ID.
	HouseholdIDKey contextKey = "household_id"
)

// GetParticipantID extracts the caller's participant ID from the context.
// Returns empty string if not found.
func GetParticipantID(ctx context.Context) string {
	id, _ := ctx.Value(ParticipantIDKey).(string)
	return id
}

// GetHouseholdID extracts the caller's household ID from the context.
// Returns empty string if not found.
func GetHouseholdID(ctx context.Context) string {
	id, _ := ctx.Value(HouseholdIDKey).(string)
	return id
}

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, householdID, participantID string) context.Context {
	ctx = context.WithValue(ctx, HouseholdIDKey, householdID)
	return context.WithValue(ctx, ParticipantIDKey, participantID)
}

// RequireAuth returns an interceptor that rejects calls without a valid bearer token.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, ok := bearerToken(req.Header().Get("Authorization"))
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithIdentity(ctx, claims.HouseholdID, claims.ParticipantID), req)
		}
	}
}

// OptionalAuth returns an interceptor that attaches the caller's identity when
// a valid token is present and lets anonymous calls through unchanged.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = WithIdentity(ctx, claims.HouseholdID, claims.ParticipantID)
				}
			}
			return next(ctx, req)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
