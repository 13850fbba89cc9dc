package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// CustomFieldController manages the extra inputs on the issue-challan
// form. Blank and duplicate names are rejected here, not in the store.
type CustomFieldController struct {
	svc services.CustomFieldService
}

func NewCustomFieldController(svc services.CustomFieldService) *CustomFieldController {
	return &CustomFieldController{svc: svc}
}

// Register registers the read route for any logged-in user.
func (ctrl *CustomFieldController) Register(g *echo.Group) {
	g.GET("/custom-fields", ctrl.ListCustomFields)
}

// RegisterAdmin registers the admin-only mutations.
func (ctrl *CustomFieldController) RegisterAdmin(g *echo.Group) {
	g.POST("/custom-fields", ctrl.AddCustomField)
	g.DELETE("/custom-fields/:name", ctrl.DeleteCustomField)
}

func (ctrl *CustomFieldController) ListCustomFields(c echo.Context) error {
	fields, err := ctrl.svc.ListCustomFields(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list custom fields"})
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return c.JSON(http.StatusOK, names)
}

type customFieldRequest struct {
	Name string `json:"name"`
}

func (ctrl *CustomFieldController) AddCustomField(c echo.Context) error {
	var req customFieldRequest
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

	existing, err := ctrl.svc.ListCustomFields(c.Request().Context(), "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add custom field"})
	}
	for _, f := range existing {
		if f.Name == name {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": i18n.T(lang(c), "duplicateCustomField"),
			})
		}
	}

	if err := ctrl.svc.AddCustomField(c.Request().Context(), name); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add custom field"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"name": name})
}

func (ctrl *CustomFieldController) DeleteCustomField(c echo.Context) error {
	if err := ctrl.svc.DeleteCustomField(c.Request().Context(), c.Param("name")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete custom field"})
	}
	return c.NoContent(http.StatusNoContent)
}
