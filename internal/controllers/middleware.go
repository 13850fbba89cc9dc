package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

const userContextKey = "currentUser"

// AuthMiddleware resolves bearer tokens to session users and gates the
// admin surface.
type AuthMiddleware struct {
	auth services.AuthService
}

func NewAuthMiddleware(auth services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireUser rejects requests without a live session and stashes the
// user on the request context.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": i18n.T(lang(c), "unauthorized"),
			})
		}

		user, err := m.auth.UserForToken(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": i18n.T(lang(c), "unauthorized"),
			})
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequireAdmin additionally rejects non-admin sessions. It must run after
// RequireUser.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{
				"error": i18n.T(lang(c), "adminOnly"),
			})
		}
		return next(c)
	}
}

func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// lang picks the response language from the lang query parameter, then
// the Accept-Language header.
func lang(c echo.Context) string {
	if l := c.QueryParam("lang"); l != "" {
		return i18n.Match(l)
	}
	return i18n.Match(c.Request().Header.Get("Accept-Language"))
}
