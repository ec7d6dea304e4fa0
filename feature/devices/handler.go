package devices

import (
	"venue-manager/core/logger"
	"venue-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for venue devices.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the devices routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/devices")
	group.Get("/", h.HandleList)
	group.Post("/heartbeat", h.HandleHeartbeat)
}

// HandleHeartbeat records that a venue device is alive.
// @Summary Device Heartbeat
// @Tags devices
// @Produce json
// @Param name query string true "Device name"
// @Param room_id query int false "Room the device sits in"
// @Success 200 {object} map[string]bool "ok"
// @Failure 400 {object} map[string]string "Missing name"
// @Router /devices/heartbeat [post]
func (h *Handler) HandleHeartbeat(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	roomID, err := utils.OptionalUint(c.Query("room_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.service.Heartbeat(c.Context(), name, roomID); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Heartbeat failed", zap.String("device", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// HandleList lists known devices.
// @Summary List Devices
// @Tags devices
// @Produce json
// @Success 200 {array} models.Device
// @Router /devices [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	devices, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Device list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(devices)
}
