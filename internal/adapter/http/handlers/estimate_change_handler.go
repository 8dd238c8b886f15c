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

var errInvalidChangePayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_INPUT", "Invalid estimate change payload", http.StatusBadRequest)

// EstimateChangeHandler handles the renegotiation routes: the technician's
// proposal and the customer's decision.

type EstimateChangeHandler struct {
	usecase usecase.IEstimateChangeUseCase
}

func NewEstimateChangeHandler(uc usecase.IEstimateChangeUseCase) *EstimateChangeHandler {
	return &EstimateChangeHandler{usecase: uc}
}

func (h *EstimateChangeHandler) Propose(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.ProposeEstimateChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangePayload.HTTPStatus, errInvalidChangePayload.ToHTTPError())
		return
	}

	req, job, err := h.usecase.Propose(c.Request.Context(), caller, c.Param("job_id"), usecase.ProposeChangeInput{
		NewAmountCents: payload.NewAmountCents,
		Reason:         payload.Reason,
	})
	if err != nil {
		appErr := mapEstimateChangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ChangeDecisionResponse{
		Request: response.FromChangeRequest(req),
		Job:     response.FromJob(job),
	})
}

func (h *EstimateChangeHandler) Respond(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.RespondEstimateChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangePayload.HTTPStatus, errInvalidChangePayload.ToHTTPError())
		return
	}

	decision := entities.ChangeRequestDeclined
	if payload.Decision == "approved" {
		decision = entities.ChangeRequestApproved
	}

	req, job, err := h.usecase.Respond(c.Request.Context(), caller, c.Param("job_id"), payload.RequestID, decision)
	if err != nil {
		appErr := mapEstimateChangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChangeDecisionResponse{
		Request: response.FromChangeRequest(req),
		Job:     response.FromJob(job),
	})
}

func mapEstimateChangeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChangeInput), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_REQUEST_NOT_FOUND", "Estimate change request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewDomainErrorSimple("CHANGE_ALREADY_DECIDED", "Estimate change request was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrAwaitingApproval):
		return pkg.NewDomainErrorSimple("AWAITING_ESTIMATE_APPROVAL", "A pending estimate change already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeNotAllowed), errors.Is(err, usecase.ErrEstimateMissing):
		return pkg.NewDomainErrorSimple("CHANGE_NOT_ALLOWED", "Estimate cannot be changed in the current job status", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
