package handlers

import (
	"errors"
	"net/http"

	request "fieldjobs/internal/adapter/http/dto/request"
	response "fieldjobs/internal/adapter/http/dto/response"
	"fieldjobs/internal/adapter/http/middleware"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase"
	"fieldjobs/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_INPUT", "Invalid technician payload", http.StatusBadRequest)

// TechnicianHandler handles the availability routes: the online flag,
// location pings and the nearby browse.

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) SetOnline(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.TechnicianOnlineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.SetOnline(c.Request.Context(), caller, *payload.Online)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicianProfile(profile))
}

func (h *TechnicianHandler) SetLocation(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.TechnicianLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.SetLocation(c.Request.Context(), caller, *payload.Lat, *payload.Lng)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicianProfile(profile))
}

func (h *TechnicianHandler) Nearby(c *gin.Context) {
	var payload request.NearbyTechniciansRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Nearby(c.Request.Context(), usecase.NearbyQuery{
		Lat:      *payload.Lat,
		Lng:      *payload.Lng,
		Trade:    entities.Trade(payload.Trade),
		RadiusKm: payload.RadiusKm,
		Limit:    payload.Limit,
	})
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNearbyTechnicians(items))
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this action", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
