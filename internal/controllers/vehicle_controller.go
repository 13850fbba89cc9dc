package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// VehicleController serves the vehicle registration lookup. One round
// trip per search, no caching or retry; the client disables its submit
// control while a request is in flight.
type VehicleController struct {
	assist services.AssistService
}

func NewVehicleController(assist services.AssistService) *VehicleController {
	return &VehicleController{assist: assist}
}

func (ctrl *VehicleController) Register(g *echo.Group) {
	g.GET("/vehicles/:number", ctrl.Lookup)
}

func (ctrl *VehicleController) Lookup(c echo.Context) error {
	number := strings.ToUpper(strings.TrimSpace(c.Param("number")))
	if number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}

	info, err := ctrl.assist.VehicleInfo(c.Request().Context(), number)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": i18n.T(lang(c), "vehicleSearchError"),
		})
	}
	return c.JSON(http.StatusOK, info)
}
