package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/i18n"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/models"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// ChallanController handles the issue-challan workflow: listing records,
// quoting fine totals, AI offense suggestions and issuance itself.
type ChallanController struct {
	svc      services.ChallanService
	offenses services.OffenseService
	assist   services.AssistService
	location services.LocationService
}

func NewChallanController(svc services.ChallanService, offenses services.OffenseService, assist services.AssistService, location services.LocationService) *ChallanController {
	return &ChallanController{svc: svc, offenses: offenses, assist: assist, location: location}
}

// Register registers the challan routes for logged-in users.
func (ctrl *ChallanController) Register(g *echo.Group) {
	g.GET("/challans", ctrl.ListChallans)
	g.POST("/challans", ctrl.IssueChallan)
	g.POST("/challans/quote", ctrl.Quote)
	g.POST("/challans/suggest", ctrl.SuggestOffenses)
	g.GET("/dashboard", ctrl.Dashboard)
}

func (ctrl *ChallanController) ListChallans(c echo.Context) error {
	user := currentUser(c)
	issuedBy := user.ID
	if user.Role == models.RoleAdmin {
		issuedBy = ""
	}

	challans, err := ctrl.svc.ListChallans(c.Request().Context(), issuedBy)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list challans"})
	}
	return c.JSON(http.StatusOK, challans)
}

func (ctrl *ChallanController) Quote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	quote, err := ctrl.svc.Quote(c.Request().Context(), req.OffenseIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute fine total"})
	}
	return c.JSON(http.StatusOK, quote)
}

// SuggestOffenses runs the incident description past the assistant and
// returns the applicable subset of the catalog. The client replaces its
// current selection with the result; it does not merge.
func (ctrl *ChallanController) SuggestOffenses(c echo.Context) error {
	var req models.SuggestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}
	if strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}

	catalog, err := ctrl.offenses.ListOffenses(c.Request().Context(), "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": i18n.T(lang(c), "errorSuggestingOffenses"),
		})
	}

	suggested, err := ctrl.assist.SuggestOffenses(c.Request().Context(), req.Description, catalog)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": i18n.T(lang(c), "errorSuggestingOffenses"),
		})
	}
	return c.JSON(http.StatusOK, suggested)
}

func (ctrl *ChallanController) IssueChallan(c echo.Context) error {
	var req models.ChallanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	user := currentUser(c)

	// Stamp the officer's last fresh position; a challan without a fix
	// is still valid.
	var lat, lon *float64
	if pos, err := ctrl.location.Current(user.ID); err == nil {
		lat, lon = &pos.Latitude, &pos.Longitude
	}

	challan, err := ctrl.svc.IssueChallan(c.Request().Context(), &req, user.ID, lat, lon)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingVehicleNumber), errors.Is(err, services.ErrNoOffenses):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": i18n.T(lang(c), "missingFields"),
			})
		case errors.Is(err, services.ErrPhotoTooLarge):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": i18n.T(lang(c), "photoSizeError"),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": i18n.T(lang(c), "challanFailed"),
		})
	}
	return c.JSON(http.StatusCreated, challan)
}

func (ctrl *ChallanController) Dashboard(c echo.Context) error {
	stats, err := ctrl.svc.Dashboard(c.Request().Context(), currentUser(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(http.StatusOK, stats)
}
