// Package association is handling the attribute-carrying links between
// a character and the skills, spells and items it relates to
package association

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/yasumitsu/gurps-manager/core"
)

var tracer = otel.Tracer("association")

// Handler is the interface for handling HTTP requests
type Handler interface {
	PutSkill(c echo.Context) error
	DeleteSkill(c echo.Context) error
	ListSkills(c echo.Context) error

	PutSpell(c echo.Context) error
	DeleteSpell(c echo.Context) error
	ListSpells(c echo.Context) error

	PutPossession(c echo.Context) error
	DeletePossession(c echo.Context) error
	ListPossessions(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func jsonError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found", "message": err.Error()})
	}
	var verr core.ErrorValidation
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": verr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
}

// PutSkill creates or updates a character-skill association
func (h handler) PutSkill(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerPutSkill")
	defer span.End()

	var request skillRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	association, err := h.service.PutSkill(ctx, core.CharacterSkill{
		CharacterID: c.Param("id"),
		SkillID:     c.Param("skill"),
		BonusLevel:  request.BonusLevel,
		Points:      request.Points,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": association})
}

// DeleteSkill removes a character-skill association
func (h handler) DeleteSkill(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDeleteSkill")
	defer span.End()

	if err := h.service.DeleteSkill(ctx, c.Param("id"), c.Param("skill")); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListSkills returns the skill associations of a character
func (h handler) ListSkills(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListSkills")
	defer span.End()

	associations, err := h.service.ListSkills(ctx, c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": associations})
}

// PutSpell creates or updates a character-spell association
func (h handler) PutSpell(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerPutSpell")
	defer span.End()

	var request spellRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	association, err := h.service.PutSpell(ctx, core.CharacterSpell{
		CharacterID: c.Param("id"),
		SpellID:     c.Param("spell"),
		BonusLevel:  request.BonusLevel,
		Points:      request.Points,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": association})
}

// DeleteSpell removes a character-spell association
func (h handler) DeleteSpell(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDeleteSpell")
	defer span.End()

	if err := h.service.DeleteSpell(ctx, c.Param("id"), c.Param("spell")); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListSpells returns the spell associations of a character
func (h handler) ListSpells(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListSpells")
	defer span.End()

	associations, err := h.service.ListSpells(ctx, c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": associations})
}

// PutPossession creates or updates a possession
func (h handler) PutPossession(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerPutPossession")
	defer span.End()

	var request possessionRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	association, err := h.service.PutPossession(ctx, core.Possession{
		CharacterID: c.Param("id"),
		ItemID:      c.Param("item"),
		Quantity:    request.Quantity,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": association})
}

// DeletePossession removes a possession
func (h handler) DeletePossession(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDeletePossession")
	defer span.End()

	if err := h.service.DeletePossession(ctx, c.Param("id"), c.Param("item")); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ListPossessions returns the possessions of a character
func (h handler) ListPossessions(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerListPossessions")
	defer span.End()

	associations, err := h.service.ListPossessions(ctx, c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": associations})
}
