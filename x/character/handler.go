// Package character is handling character object and the traits and
// hit locations it owns
package character

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	GetSheet(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	List(c echo.Context) error
	ListByCampaign(c echo.Context) error

	CreateTrait(c echo.Context) error
	UpdateTrait(c echo.Context) error
	DeleteTrait(c echo.Context) error
	ListTraits(c echo.Context) error

	CreateHitLocation(c echo.Context) error
	UpdateHitLocation(c echo.Context) error
	DeleteHitLocation(c echo.Context) error
	ListHitLocations(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Create creates a new character
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCreate")
	defer span.End()

	var character core.Character
	if err := c.Bind(&character); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	created, err := h.service.Create(ctx, character)
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

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Get returns a character by ID
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerGet")
	defer span.End()

	character, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": character})
}

// GetSheet returns a character with its derived statistics
func (h handler) GetSheet(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerGetSheet")
	defer span.End()

	sheet, err := h.service.GetSheet(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": sheet})
}

// Update updates a character
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerUpdate")
	defer span.End()

	var character core.Character
	if err := c.Bind(&character); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	character.ID = c.Param("id")

	updated, err := h.service.Update(ctx, character)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// Delete deletes a character and everything it owns
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDelete")
	defer span.End()

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// List returns all characters
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerList")
	defer span.End()

	characters, err := h.service.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": characters})
}

// ListByCampaign returns the characters belonging to a campaign
func (h handler) ListByCampaign(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListByCampaign")
	defer span.End()

	characters, err := h.service.ListByCampaign(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Campaign not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": characters})
}

// CreateTrait creates a new trait for a character
func (h handler) CreateTrait(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCreateTrait")
	defer span.End()

	var trait core.Trait
	if err := c.Bind(&trait); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	trait.CharacterID = c.Param("id")

	created, err := h.service.CreateTrait(ctx, trait)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// UpdateTrait updates a trait
func (h handler) UpdateTrait(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerUpdateTrait")
	defer span.End()

	var trait core.Trait
	if err := c.Bind(&trait); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	trait.ID = c.Param("id")

	updated, err := h.service.UpdateTrait(ctx, trait)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Trait not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// DeleteTrait deletes a trait
func (h handler) DeleteTrait(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDeleteTrait")
	defer span.End()

	err := h.service.DeleteTrait(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Trait not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListTraits returns the traits owned by a character
func (h handler) ListTraits(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListTraits")
	defer span.End()

	traits, err := h.service.ListTraits(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": traits})
}

// CreateHitLocation creates a new hit location for a character
func (h handler) CreateHitLocation(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCreateHitLocation")
	defer span.End()

	var location core.HitLocation
	if err := c.Bind(&location); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	location.CharacterID = c.Param("id")

	created, err := h.service.CreateHitLocation(ctx, location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// UpdateHitLocation updates a hit location
func (h handler) UpdateHitLocation(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerUpdateHitLocation")
	defer span.End()

	var location core.HitLocation
	if err := c.Bind(&location); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}
	location.ID = c.Param("id")

	updated, err := h.service.UpdateHitLocation(ctx, location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Hit location not found"})
		}
		var verr core.ErrorValidation
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// DeleteHitLocation deletes a hit location
func (h handler) DeleteHitLocation(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDeleteHitLocation")
	defer span.End()

	err := h.service.DeleteHitLocation(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Hit location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListHitLocations returns the hit locations owned by a character
func (h handler) ListHitLocations(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListHitLocations")
	defer span.End()

	locations, err := h.service.ListHitLocations(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": locations})
}
