package files

import (
	"errors"

	"venue-manager/core/logger"
	"venue-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for presentation files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the files routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Post("/upload", h.HandleUpload)
	group.Get("/manifest/:event_id", h.HandleManifest)
}

func optionalBool(c *fiber.Ctx, key string) *bool {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	b := utils.ToBool(v)
	return &b
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// HandleUpload stores a presentation file and records it as an expected upload.
// @Summary Upload File
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param event_id formData int true "Event ID"
// @Param speaker_id formData int false "Speaker ID"
// @Param room_id formData int false "Room ID"
// @Param session_date formData string false "Session date (YYYY-MM-DD)"
// @Param has_video formData bool false "Contains video"
// @Param has_audio formData bool false "Contains audio"
// @Param needs_internet formData bool false "Needs internet during the talk"
// @Param file formData file true "Presentation file"
// @Success 201 {object} UploadResult
// @Failure 400 {object} map[string]string "Invalid form"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /files/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	eventID, err := utils.OptionalUint(c.FormValue("event_id"))
	if err != nil || eventID == nil {
		return badRequest(c, "event_id is required")
	}
	speakerID, err := utils.OptionalUint(c.FormValue("speaker_id"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	roomID, err := utils.OptionalUint(c.FormValue("room_id"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	date, err := utils.OptionalDate(c.FormValue("session_date"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		l.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	result, err := h.service.Upload(c.Context(), UploadInput{
		EventID:       *eventID,
		SpeakerID:     speakerID,
		RoomID:        roomID,
		SessionDate:   date,
		Filename:      fh.Filename,
		Size:          fh.Size,
		HasVideo:      optionalBool(c, "has_video"),
		HasAudio:      optionalBool(c, "has_audio"),
		NeedsInternet: utils.ToBool(c.FormValue("needs_internet")),
		Content:       f,
	})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Upload failed", zap.String("filename", fh.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleManifest lists the stored objects of an event for venue devices.
// @Summary Event Manifest
// @Tags files
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {array} ManifestEntry
// @Failure 400 {object} map[string]string "Invalid event id"
// @Router /files/manifest/{event_id} [get]
func (h *Handler) HandleManifest(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("event_id")
	if err != nil || eventID <= 0 {
		return badRequest(c, "invalid event id")
	}

	entries, err := h.service.Manifest(c.Context(), uint(eventID))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Manifest query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}
