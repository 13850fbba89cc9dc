package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// RuleController answers free-text rule book queries.
type RuleController struct {
	assist services.AssistService
}

func NewRuleController(assist services.AssistService) *RuleController {
	return &RuleController{assist: assist}
}

func (ctrl *RuleController) Register(g *echo.Group) {
	g.POST("/rules/search", ctrl.Search)
}

func (ctrl *RuleController) Search(c echo.Context) error {
	var req models.RuleQueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}

	answer, err := ctrl.assist.SearchRules(c.Request().Context(), req.Query)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": i18n.T(lang(c), "ruleSearchError"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"answer": answer})
}
