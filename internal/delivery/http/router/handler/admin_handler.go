package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"alumnihub/internal/delivery/http/response"
	"alumnihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the moderation routes. The admin gate
// itself lives in the router middleware chain.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Pending lists the accounts awaiting moderation.
func (h *AdminHandler) Pending(c echo.Context) error {
	records, err := h.uc.Pending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listResponse{Count: len(records), Alumni: records}, "")
}

// Approve flips the approval flag.
func (h *AdminHandler) Approve(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Approve(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Alumni approved successfully")
}

// Reject deletes the account permanently.
func (h *AdminHandler) Reject(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Reject(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alumni rejected and removed")
}

// MakeAdmin grants admin rights.
func (h *AdminHandler) MakeAdmin(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.MakeAdmin(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Admin rights granted")
}

// DashboardAlumni lists accounts across both approval states.
func (h *AdminHandler) DashboardAlumni(c echo.Context) error {
	graduationYear, _ := strconv.Atoi(c.QueryParam("graduationYear"))

	records, err := h.uc.DashboardAlumni(c.Request().Context(), &usecase.DashboardFilter{
		Status:         c.QueryParam("status"),
		Search:         c.QueryParam("search"),
		Department:     c.QueryParam("department"),
		GraduationYear: graduationYear,
		SortBy:         c.QueryParam("sortBy"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listResponse{Count: len(records), Alumni: records}, "")
}

// DashboardStats returns account counts and donation aggregates.
func (h *AdminHandler) DashboardStats(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
