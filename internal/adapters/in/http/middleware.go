package http

import (
	"net/http"
	"strings"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the auth middleware stores the
// authenticated actor under.
const actorContextKey = "actor"

// Actor is the authenticated identity attached to each request.
type Actor struct {
	Username string
	Role     user.Role
}

// AuthMiddleware verifies the bearer token on every request and stores the
// resulting Actor in the echo context. Requests without a valid token are
// rejected with 401 before reaching a handler.
func AuthMiddleware(auth *token.AuthToken) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := auth.Verify(tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			role, err := user.RoleFromString(claims.Role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(actorContextKey, Actor{
				Username: claims.Username,
				Role:     role,
			})

			return next(ctx)
		}
	}
}

// actorFromContext returns the Actor the auth middleware stored.
// The boolean is false on routes the middleware does not cover.
func actorFromContext(ctx echo.Context) (Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(Actor)
	return actor, ok
}
