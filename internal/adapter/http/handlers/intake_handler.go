package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "content_factory/internal/adapter/http/dto/request"
	response "content_factory/internal/adapter/http/dto/response"
	"content_factory/internal/domain/entities"
	"content_factory/internal/usecase"
	"content_factory/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

// IntakeHandler handles HTTP requests for the multi-step client intake form:
// service selection, per-service configuration, upsells, project details and
// the live price quote.

type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// CreateIntake starts a new empty draft intake.
func (h *IntakeHandler) CreateIntake(c *gin.Context) {
	intake, err := h.usecase.CreateIntake(c.Request.Context())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromIntake(intake))
}

// GetIntake returns the current state of one intake.
func (h *IntakeHandler) GetIntake(c *gin.Context) {
	intake, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

// ToggleService adds or removes a catalog service from the selection.
// Deselecting a service drops its configuration in the same update.
func (h *IntakeHandler) ToggleService(c *gin.Context) {
	var payload request.ToggleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	intake, err := h.usecase.ToggleService(c.Request.Context(), c.Param("id"), payload.ResolveServiceID())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

// UpdateServiceConfig shallow-merges a config patch into one selected
// service's configuration.
func (h *IntakeHandler) UpdateServiceConfig(c *gin.Context) {
	var patch request.ServiceConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	serviceID := entities.ServiceID(strings.TrimSpace(c.Param("service_id")))
	intake, err := h.usecase.UpdateServiceConfig(c.Request.Context(), c.Param("id"), serviceID, patch.ToServiceConfig())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

// ToggleUpsell records or withdraws acceptance of a recommended upsell.
// Accepted upsells are informational only and never change the quote total.
func (h *IntakeHandler) ToggleUpsell(c *gin.Context) {
	var payload request.ToggleUpsellRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	intake, err := h.usecase.ToggleAdditionalService(c.Request.Context(), c.Param("id"), payload.ResolveUpsellID())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

// UpdateDetails sets the final-step project fields.
func (h *IntakeHandler) UpdateDetails(c *gin.Context) {
	var payload request.ProjectDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	intake, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToProjectDetails())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

// GetQuote returns the itemized price breakdown for the current state. The
// breakdown is recomputed on every call, never cached.
func (h *IntakeHandler) GetQuote(c *gin.Context) {
	breakdown, err := h.usecase.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// GetUpsells returns the recommended additions for the current state.
func (h *IntakeHandler) GetUpsells(c *gin.Context) {
	options, err := h.usecase.Upsells(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUpsellOptions(options))
}

// SubmitIntake finalizes a draft intake.
func (h *IntakeHandler) SubmitIntake(c *gin.Context) {
	intake, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntake(intake))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntakeID), errors.Is(err, usecase.ErrInvalidUpsellID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Unknown service id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotSelected):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_SELECTED", "Service is not selected on this intake", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntakeAlreadySubmitted):
		return pkg.NewDomainErrorSimple("INTAKE_ALREADY_SUBMITTED", "Intake has already been submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntakeNotFound):
		return pkg.NewDomainErrorSimple("INTAKE_NOT_FOUND", "Intake not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
