package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// OffenseController serves the offense catalog to every officer and its
// CRUD surface to admins.
type OffenseController struct {
	svc services.OffenseService
}

func NewOffenseController(svc services.OffenseService) *OffenseController {
	return &OffenseController{svc: svc}
}

// Register registers the catalog read route for any logged-in user.
func (ctrl *OffenseController) Register(g *echo.Group) {
	g.GET("/offenses", ctrl.ListOffenses)
}

// RegisterAdmin registers the admin-only catalog mutations.
func (ctrl *OffenseController) RegisterAdmin(g *echo.Group) {
	g.POST("/offenses", ctrl.AddOffense)
	g.PUT("/offenses/:id", ctrl.UpdateOffense)
	g.DELETE("/offenses/:id", ctrl.DeleteOffense)
}

func (ctrl *OffenseController) ListOffenses(c echo.Context) error {
	offenses, err := ctrl.svc.ListOffenses(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list offenses"})
	}
	return c.JSON(http.StatusOK, offenses)
}

type offenseRequest struct {
	Name string `json:"name"`
	Fine int    `json:"fine"`
}

func (ctrl *OffenseController) AddOffense(c echo.Context) error {
	var req offenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}
	if req.Fine <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidFine"),
		})
	}

	offense := &models.Offense{
		ID:   fmt.Sprintf("O%d", time.Now().UnixNano()),
		Name: name,
		Fine: req.Fine,
	}
	if err := ctrl.svc.AddOffense(c.Request().Context(), offense); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add offense"})
	}
	return c.JSON(http.StatusCreated, offense)
}

func (ctrl *OffenseController) UpdateOffense(c echo.Context) error {
	var req offenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}
	if req.Fine <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidFine"),
		})
	}

	updates := map[string]interface{}{"name": name, "fine": req.Fine}
	if err := ctrl.svc.UpdateOffense(c.Request().Context(), c.Param("id"), updates); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update offense"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *OffenseController) DeleteOffense(c echo.Context) error {
	if err := ctrl.svc.DeleteOffense(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete offense"})
	}
	return c.NoContent(http.StatusNoContent)
}
