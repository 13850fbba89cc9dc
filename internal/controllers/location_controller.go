package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// LocationController receives officer device position reports and serves
// back the last known fix.
type LocationController struct {
	svc services.LocationService
}

func NewLocationController(svc services.LocationService) *LocationController {
	return &LocationController{svc: svc}
}

func (ctrl *LocationController) Register(g *echo.Group) {
	g.POST("/location", ctrl.Report)
	g.GET("/location", ctrl.Current)
	g.DELETE("/location", ctrl.Clear)
}

func (ctrl *LocationController) Report(c echo.Context) error {
	var req models.PositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	ctrl.svc.Report(currentUser(c).ID, req.Latitude, req.Longitude)
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *LocationController) Current(c echo.Context) error {
	pos, err := ctrl.svc.Current(currentUser(c).ID)
	if err != nil {
		if errors.Is(err, services.ErrNoPosition) || errors.Is(err, services.ErrPositionStale) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": i18n.T(lang(c), "noPosition"),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read position"})
	}
	return c.JSON(http.StatusOK, pos)
}

func (ctrl *LocationController) Clear(c echo.Context) error {
	ctrl.svc.Clear(currentUser(c).ID)
	return c.NoContent(http.StatusNoContent)
}
