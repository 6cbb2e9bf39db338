package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
)

// RoleMiddleware resolves the verified uid into an (actor id, role) pair and
// gates routes on the closed role set. Every operation downstream receives
// the actor explicitly; nothing reads identity from ambient state.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// ResolveActor loads the user record behind the authenticated uid and stores
// the typed actor in the request context.
func (m *RoleMiddleware) ResolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unknown account")
		}

		if !user.Role.Valid() {
			return echo.NewHTTPError(http.StatusForbidden, "Account has no marketplace role")
		}

		c.Set("actor", entity.Actor{ID: user.ID, Role: user.Role})

		return next(c)
	}
}

func (m *RoleMiddleware) ClientOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := c.Get("actor").(entity.Actor)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !actor.IsClient() {
			return echo.NewHTTPError(http.StatusForbidden, "Client account required")
		}

		return next(c)
	}
}

func (m *RoleMiddleware) CompanyOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := c.Get("actor").(entity.Actor)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !actor.IsCompany() {
			return echo.NewHTTPError(http.StatusForbidden, "Company account required")
		}

		return next(c)
	}
}
