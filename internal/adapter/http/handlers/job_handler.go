package handlers

import (
	"errors"
	"net/http"

	request "fieldjobs/internal/adapter/http/dto/request"
	response "fieldjobs/internal/adapter/http/dto/response"
	"fieldjobs/internal/adapter/http/middleware"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/domain/pricing"
	"fieldjobs/internal/usecase"
	"fieldjobs/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errMissingIdentity   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated identity", http.StatusUnauthorized)
)

// JobHandler handles the dispatch and lifecycle routes: quote, create,
// detail, accept and status transitions.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// Quote returns the flat-rate price for a trade without creating a job.
func (h *JobHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	amount, currency, err := h.usecase.Quote(c.Request.Context(), entities.Trade(payload.Trade))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteResponse{
		Trade:       payload.Trade,
		AmountCents: amount,
		Currency:    currency,
	})
}

// CreateJob opens a new service request and fans offers out to matching
// technicians.
func (h *JobHandler) CreateJob(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), caller, usecase.CreateJobInput{
		Trade:       entities.Trade(payload.Trade),
		Description: payload.Description,
		Photos:      payload.Photos,
		Address:     payload.Address,
		Lat:         *payload.Lat,
		Lng:         *payload.Lng,
		IsASAP:      payload.IsASAP,
		ScheduledAt: payload.ScheduledAt,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob returns the job with its change requests and chat history. Only a
// participant may read it.
func (h *JobHandler) GetJob(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	detail, err := h.usecase.GetForUser(c.Request.Context(), caller, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobDetail(detail))
}

// AcceptJob binds the calling technician to the job. First acceptance wins;
// later callers get a conflict.
func (h *JobHandler) AcceptJob(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	job, err := h.usecase.Accept(c.Request.Context(), caller, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// SetStatus applies a lifecycle transition requested by a participant.
func (h *JobHandler) SetStatus(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetStatus(c.Request.Context(), caller, c.Param("job_id"), entities.JobStatus(payload.Status))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, pricing.ErrUnknownTrade):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyMatched):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_MATCHED", "Job was already taken by another technician", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAvailable):
		return pkg.NewDomainErrorSimple("JOB_NOT_AVAILABLE", "Job is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrAwaitingApproval):
		return pkg.NewDomainErrorSimple("AWAITING_ESTIMATE_APPROVAL", "Job is parked until the customer decides on the estimate change", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested status transition is not allowed", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
