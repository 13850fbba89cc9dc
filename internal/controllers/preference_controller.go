package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// PreferenceController exposes the theme selection, read once by clients
// at startup and written on every change.
type PreferenceController struct {
	svc services.PreferenceService
}

func NewPreferenceController(svc services.PreferenceService) *PreferenceController {
	return &PreferenceController{svc: svc}
}

func (ctrl *PreferenceController) Register(g *echo.Group) {
	g.GET("/preferences/theme", ctrl.GetTheme)
	g.PUT("/preferences/theme", ctrl.SetTheme)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (ctrl *PreferenceController) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"theme": ctrl.svc.Theme()})
}

func (ctrl *PreferenceController) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	if err := ctrl.svc.SetTheme(req.Theme); err != nil {
		if errors.Is(err, services.ErrInvalidTheme) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": i18n.T(lang(c), "invalidTheme"),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save theme"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theme": req.Theme})
}
