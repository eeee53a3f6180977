// Package campaign is handling campaign object
package campaign

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

var tracer = otel.Tracer("campaign")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	List(c echo.Context) error
	AttachSkillSet(c echo.Context) error
	DetachSkillSet(c echo.Context) error
	ListSkillSets(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Create creates a new campaign
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCreate")
	defer span.End()

	var campaign core.Campaign
	if err := c.Bind(&campaign); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	created, err := h.service.Create(ctx, campaign)
	if err != nil {
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Get returns a campaign by ID
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerGet")
	defer span.End()

	campaign, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": campaign})
}

// Update updates a campaign
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerUpdate")
	defer span.End()

	var campaign core.Campaign
	if err := c.Bind(&campaign); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	campaign.ID = c.Param("id")

	updated, err := h.service.Update(ctx, campaign)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// Delete deletes a campaign
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDelete")
	defer span.End()

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		var cerr core.ErrorConflict
		if errors.As(err, &cerr) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Conflict", "message": cerr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// List returns all campaigns
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerList")
	defer span.End()

	campaigns, err := h.service.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": campaigns})
}

// AttachSkillSet adds a skillset to the campaign's pool
func (h handler) AttachSkillSet(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerAttachSkillSet")
	defer span.End()

	err := h.service.AttachSkillSet(ctx, c.Param("id"), c.Param("skillset"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign or skillset not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// DetachSkillSet removes a skillset from the campaign's pool
func (h handler) DetachSkillSet(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDetachSkillSet")
	defer span.End()

	err := h.service.DetachSkillSet(ctx, c.Param("id"), c.Param("skillset"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListSkillSets returns the skillsets attached to a campaign
func (h handler) ListSkillSets(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListSkillSets")
	defer span.End()

	skillsets, err := h.service.ListSkillSets(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": skillsets})
}
