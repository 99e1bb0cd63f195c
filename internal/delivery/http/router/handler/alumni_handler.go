package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"alumnihub/internal/delivery/http/middleware"
	"alumnihub/internal/delivery/http/response"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// AlumniHandler holds dependencies for the public directory routes.
type AlumniHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewAlumniHandler is the constructor for AlumniHandler, injected by Fx.
func NewAlumniHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *AlumniHandler {
	return &AlumniHandler{
		uc:     uc,
		logger: logger,
	}
}

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidation.WithMessage("Invalid id")
	}

	return id, nil
}

// listResponse pairs a listing with its size, like the original API.
type listResponse struct {
	Count  int `json:"count"`
	Alumni any `json:"alumni"`
}

// List returns the approved directory with optional filters.
func (h *AlumniHandler) List(c echo.Context) error {
	graduationYear, _ := strconv.Atoi(c.QueryParam("graduationYear"))

	records, err := h.uc.ListAlumni(c.Request().Context(), &usecase.DirectoryFilter{
		Department:     c.QueryParam("department"),
		GraduationYear: graduationYear,
		Country:        c.QueryParam("country"),
		City:           c.QueryParam("city"),
		Search:         c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listResponse{Count: len(records), Alumni: records}, "")
}

// Get returns one approved record.
func (h *AlumniHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := h.uc.GetAlumni(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// Stats returns the public directory statistics.
func (h *AlumniHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// MapData returns the world-map payload.
func (h *AlumniHandler) MapData(c echo.Context) error {
	data, err := h.uc.MapData(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// updateProfileRequest mirrors the patchable profile fields. Pointers keep
// "absent" distinct from "set to zero value".
type updateProfileRequest struct {
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	Phone          *string    `json:"phone"`
	LinkedIn       *string    `json:"linkedin"`
	Department     *string    `json:"department"`
	GraduationYear *int       `json:"graduationYear"`
	RollNumber     *string    `json:"rollNumber"`
	CurrentCompany *string    `json:"currentCompany"`
	JobTitle       *string    `json:"jobTitle"`
	Country        *string    `json:"country"`
	City           *string    `json:"city"`
	FullAddress    *string    `json:"fullAddress"`
	Coordinates    *[]float64 `json:"coordinates" validate:"omitempty,len=2"` // [lng, lat]
}

// Update applies a profile patch for the owner or an admin.
func (h *AlumniHandler) Update(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "NO_TOKEN", "No token provided")
	}

	targetID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	patch := repository.ProfilePatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		LinkedIn:       req.LinkedIn,
		Department:     req.Department,
		GraduationYear: req.GraduationYear,
		RollNumber:     req.RollNumber,
		CurrentCompany: req.CurrentCompany,
		JobTitle:       req.JobTitle,
		Country:        req.Country,
		City:           req.City,
		FullAddress:    req.FullAddress,
	}
	if req.Coordinates != nil {
		point := orb.Point{(*req.Coordinates)[0], (*req.Coordinates)[1]}
		patch.Coordinates = &point
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		ActorID:      claims.AlumniID,
		ActorIsAdmin: claims.IsAdmin,
		TargetID:     targetID,
		Patch:        patch,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}
