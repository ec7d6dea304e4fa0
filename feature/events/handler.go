package events

import (
	"errors"

	"venue-manager/core/logger"
	"venue-manager/core/utils"
	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for events.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the events routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/events")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
}

// HandleList lists events.
// @Summary List Events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Event list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(events)
}

// HandleCreate schedules a new event.
// @Summary Create Event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventCreate true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /events [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in models.EventCreate
	if err := utils.DecodeStrict(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	event, err := h.service.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, models.ErrInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("Event create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}
