package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"

	"github.com/wicaksn/gostore/internal/errs"
	"github.com/wicaksn/gostore/internal/server"
)

// AuthMiddleware holds the app Server so middleware can access shared
// deps like Logger and Config.
//
// The store API runs without authentication by default (auth.enabled
// config flag). RequireAuth is wired on the router for deployments
// that front the API with Clerk.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	if s.Config.Auth.SecretKey != "" {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}
	return &AuthMiddleware{
		server: s,
	}
}

// Enabled reports whether auth enforcement is switched on in config.
func (auth *AuthMiddleware) Enabled() bool {
	return auth.server.Config.Auth.Enabled && auth.server.Config.Auth.SecretKey != ""
}

// RequireAuth is an Echo middleware that enforces authentication using
// Clerk.
//
// Behavior:
//  1. Wraps Clerk's middleware that parses the Authorization header.
//  2. On failure, emits a JSON 401 through AuthorizationFailureHandler.
//  3. On success, extracts session claims from the request context and
//     stores user_id/user_role/permissions into Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				response := errs.NewUnauthorizedError("Unauthorized", false)
				if err := json.NewEncoder(w).Encode(response); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "RequireAuth").
						Msg("failed to write JSON response")
				}
			}))))(
		func(c echo.Context) error {
			start := time.Now()

			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Dur("duration", time.Since(start)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			// Stored in Echo's context (not Go's context.Context) for
			// handlers and the context enhancer to read.
			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)
			c.Set("permissions", claims.Claims.ActiveOrganizationPermissions)

			auth.server.Logger.Info().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return next(c)
		})
}
