package speakers

import (
	"errors"
	"fmt"

	"venue-manager/core/logger"
	"venue-manager/core/utils"
	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for speakers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the speakers routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/speakers")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Post("/bulk", h.HandleImport)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func errorStatus(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalid):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func decode(c *fiber.Ctx, v any) error {
	if err := utils.DecodeStrict(c.Body(), v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// HandleList lists speakers.
// @Summary List Speakers
// @Tags speakers
// @Produce json
// @Success 200 {array} models.Speaker
// @Router /speakers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	speakers, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "Speaker list failed", err)
	}
	return c.JSON(speakers)
}

// HandleGet returns one speaker.
// @Summary Get Speaker
// @Tags speakers
// @Produce json
// @Param id path int true "Speaker ID"
// @Success 200 {object} models.Speaker
// @Failure 404 {object} map[string]string "Not found"
// @Router /speakers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid request", err)
	}
	speaker, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, "Speaker lookup failed", err)
	}
	return c.JSON(speaker)
}

// HandleCreate adds a speaker.
// @Summary Create Speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Param speaker body models.SpeakerCreate true "Speaker"
// @Success 201 {object} models.Speaker
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /speakers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in models.SpeakerCreate
	if err := decode(c, &in); err != nil {
		return h.fail(c, "Invalid request", err)
	}
	speaker, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, "Speaker create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(speaker)
}

// HandleUpdate changes the given fields of a speaker.
// @Summary Update Speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Param id path int true "Speaker ID"
// @Param speaker body models.SpeakerUpdate true "Fields to change"
// @Success 200 {object} models.Speaker
// @Failure 404 {object} map[string]string "Not found"
// @Router /speakers/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid request", err)
	}
	var in models.SpeakerUpdate
	if err := decode(c, &in); err != nil {
		return h.fail(c, "Invalid request", err)
	}
	speaker, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return h.fail(c, "Speaker update failed", err)
	}
	return c.JSON(speaker)
}

// HandleDelete removes a speaker.
// @Summary Delete Speaker
// @Tags speakers
// @Produce json
// @Param id path int true "Speaker ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /speakers/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid request", err)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, "Speaker delete failed", err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Speaker %d deleted successfully", id)})
}

// HandleImport adds every speaker listed in an uploaded CSV roster.
// @Summary Import Speakers
// @Tags speakers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV with full_name, title and bio columns"
// @Success 201 {object} map[string]interface{} "Imported count"
// @Failure 400 {object} map[string]string "Invalid roster"
// @Router /speakers/bulk [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, "Invalid request", fiber.NewError(fiber.StatusBadRequest, "file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, "Roster open failed", err)
	}
	defer f.Close()

	n, err := h.service.Import(c.Context(), f)
	if err != nil {
		return h.fail(c, "Speaker import failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Uploaded %d speakers", n),
		"count":   n,
	})
}
