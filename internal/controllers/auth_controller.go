package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// AuthController handles login and logout.
type AuthController struct {
	auth     services.AuthService
	location services.LocationService
}

func NewAuthController(auth services.AuthService, location services.LocationService) *AuthController {
	return &AuthController{auth: auth, location: location}
}

// Register registers the public login route.
func (ctrl *AuthController) Register(g *echo.Group) {
	g.POST("/auth/login", ctrl.Login)
}

// RegisterProtected registers routes that need a session.
func (ctrl *AuthController) RegisterProtected(g *echo.Group) {
	g.POST("/auth/logout", ctrl.Logout)
	g.GET("/auth/me", ctrl.Me)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	token, user, err := ctrl.auth.Login(c.Request().Context(), req.Username, req.Role, req.Password)
	if err != nil {
		// One generic message for every failure mode; no user enumeration.
		if errors.Is(err, services.ErrLoginFailed) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": i18n.T(lang(c), "loginFailed"),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": i18n.T(lang(c), "loginFailed"),
		})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	user := currentUser(c)
	ctrl.auth.Logout(bearerToken(c))
	// Session teardown also stops tracking the device position.
	ctrl.location.Clear(user.ID)
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	user := *currentUser(c)
	user.Password = ""
	return c.JSON(http.StatusOK, user)
}
