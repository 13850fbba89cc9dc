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

// UserController is the admin surface for employee accounts.
type UserController struct {
	svc services.UserService
}

func NewUserController(svc services.UserService) *UserController {
	return &UserController{svc: svc}
}

// Register registers the admin-only employee routes.
func (ctrl *UserController) Register(g *echo.Group) {
	g.GET("/employees", ctrl.ListEmployees)
	g.POST("/employees", ctrl.AddEmployee)
	g.PUT("/employees/:id", ctrl.UpdateEmployee)
	g.DELETE("/employees/:id", ctrl.DeleteEmployee)
}

func (ctrl *UserController) ListEmployees(c echo.Context) error {
	employees, err := ctrl.svc.ListEmployees(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list employees"})
	}
	for i := range employees {
		employees[i].Password = ""
	}
	return c.JSON(http.StatusOK, employees)
}

type employeeRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (ctrl *UserController) AddEmployee(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "invalidRequest"),
		})
	}

	name := strings.TrimSpace(req.Name)
	password := strings.TrimSpace(req.Password)
	// Employees require a password; only admins may go without one.
	if name == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": i18n.T(lang(c), "missingFields"),
		})
	}

	user := &models.User{
		ID:       fmt.Sprintf("E%d", time.Now().UnixNano()),
		Name:     name,
		Role:     models.RoleEmployee,
		Password: password,
	}
	if err := ctrl.svc.AddUser(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add employee"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, user)
}

func (ctrl *UserController) UpdateEmployee(c echo.Context) error {
	var req employeeRequest
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

	// A blank password on edit means "leave it unchanged".
	updates := map[string]interface{}{"name": name}
	if password := strings.TrimSpace(req.Password); password != "" {
		updates["password"] = password
	}

	if err := ctrl.svc.UpdateUser(c.Request().Context(), c.Param("id"), updates); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update employee"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *UserController) DeleteEmployee(c echo.Context) error {
	if err := ctrl.svc.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete employee"})
	}
	return c.NoContent(http.StatusNoContent)
}
