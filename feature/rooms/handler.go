package rooms

import (
	"errors"

	"venue-manager/core/lock"
	"venue-manager/core/logger"
	"venue-manager/core/reconcile"
	"venue-manager/core/utils"
	"venue-manager/feature/rooms/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rooms, room scans and uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rooms routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rooms")
	group.Get("/", h.HandleListRooms)
	group.Post("/", h.HandleCreateRoom)
	group.Get("/:id", h.HandleGetRoom)
	group.Put("/:id", h.HandleUpdateRoom)
	group.Delete("/:id", h.HandleDeleteRoom)
	group.Put("/:id/ping", h.HandlePing)
	group.Get("/:id/status", h.HandleStatus)
	group.Put("/:id/scan", h.HandleScan)
	group.Post("/:id/verify-uploads", h.HandleVerify)

	app.Put("/events/:id/scan", h.HandleScanEvent)
	app.Patch("/uploads/:id", h.HandleUpdateUpload)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUploadNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrConfig):
		return fiber.StatusBadRequest
	case errors.Is(err, lock.ErrBusy):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// reportStatus maps a report to an HTTP status code. Offline rooms are a normal outcome.
func reportStatus(r *reconcile.Report) int {
	if r.Status != reconcile.StatusError {
		return fiber.StatusOK
	}
	switch r.ErrorKind {
	case reconcile.KindConfig:
		return fiber.StatusBadRequest
	case reconcile.KindRoomNotFound:
		return fiber.StatusNotFound
	case reconcile.KindShareNotFound, reconcile.KindShareAccess:
		return fiber.StatusBadGateway
	case reconcile.KindTimeout:
		return fiber.StatusGatewayTimeout
	case reconcile.KindBusy:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// scanRequest reads the room id and optional filters shared by scan and verify.
func scanRequest(c *fiber.Ctx) (reconcile.Request, error) {
	id, err := paramID(c)
	if err != nil {
		return reconcile.Request{}, err
	}
	eventID, err := utils.OptionalUint(c.Query("event_id"))
	if err != nil {
		return reconcile.Request{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	date, err := utils.OptionalDate(c.Query("session_date"))
	if err != nil {
		return reconcile.Request{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return reconcile.Request{RoomID: id, EventID: eventID, SessionDate: date}, nil
}

// HandleListRooms lists all rooms.
// @Summary List Rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} models.Room
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms [get]
func (h *Handler) HandleListRooms(c *fiber.Ctx) error {
	rooms, err := h.service.ListRooms(c.Context())
	if err != nil {
		return h.fail(c, "Failed to list rooms", err)
	}
	return c.JSON(rooms)
}

// HandleCreateRoom creates a room.
// @Summary Create Room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body models.RoomUpdate true "Room fields"
// @Success 201 {object} models.Room
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /rooms [post]
func (h *Handler) HandleCreateRoom(c *fiber.Ctx) error {
	var in models.RoomUpdate
	if err := utils.DecodeStrict(c.Body(), &in); err != nil {
		return h.fail(c, "Invalid room body", fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if in.Name == nil || *in.Name == "" {
		return h.fail(c, "Invalid room body", fiber.NewError(fiber.StatusBadRequest, "name is required"))
	}

	room := &models.Room{Name: *in.Name, Capacity: in.Capacity}
	if in.IPAddress != nil {
		room.IPAddress = *in.IPAddress
	}
	if in.SharePath != nil {
		room.SharePath = *in.SharePath
	}
	if in.ShareUsername != nil {
		room.ShareUsername = *in.ShareUsername
	}
	if in.SharePassword != nil {
		room.SharePassword = *in.SharePassword
	}

	if err := h.service.CreateRoom(c.Context(), room); err != nil {
		return h.fail(c, "Failed to create room", err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// HandleGetRoom returns one room.
// @Summary Get Room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} map[string]string "Room not found"
// @Router /rooms/{id} [get]
func (h *Handler) HandleGetRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid room id", err)
	}
	room, err := h.service.GetRoom(c.Context(), id)
	if err != nil {
		return h.fail(c, "Failed to load room", err)
	}
	return c.JSON(room)
}

// HandleUpdateRoom applies a partial update. Unknown fields are rejected.
// @Summary Update Room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param room body models.RoomUpdate true "Fields to change"
// @Success 200 {object} models.Room
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 404 {object} map[string]string "Room not found"
// @Router /rooms/{id} [put]
func (h *Handler) HandleUpdateRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid room id", err)
	}
	var update models.RoomUpdate
	if err := utils.DecodeStrict(c.Body(), &update); err != nil {
		return h.fail(c, "Invalid room body", fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	room, err := h.service.UpdateRoom(c.Context(), id, update)
	if err != nil {
		return h.fail(c, "Failed to update room", err)
	}
	return c.JSON(room)
}

// HandleDeleteRoom deletes a room.
// @Summary Delete Room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Room not found"
// @Router /rooms/{id} [delete]
func (h *Handler) HandleDeleteRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid room id", err)
	}
	if err := h.service.DeleteRoom(c.Context(), id); err != nil {
		return h.fail(c, "Failed to delete room", err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandlePing checks whether the room's machine answers.
// @Summary Ping Room
// @Description One bounded liveness probe against the room's address.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} PingResult
// @Failure 400 {object} map[string]string "Room has no address"
// @Failure 404 {object} map[string]string "Room not found"
// @Router /rooms/{id}/ping [put]
func (h *Handler) HandlePing(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid room id", err)
	}
	result, err := h.service.Ping(c.Context(), id)
	if err != nil {
		return h.fail(c, "Room ping failed", err)
	}
	return c.JSON(result)
}

// HandleStatus returns the last known liveness of a room.
// @Summary Room Status
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} RoomStatus
// @Router /rooms/{id}/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid room id", err)
	}
	return c.JSON(h.service.Status(id))
}

// HandleScan reconciles the room share against its expected uploads.
// @Summary Scan Room
// @Description Probes the room, scans its share and matches files to expected uploads.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Param event_id query int false "Event ID"
// @Param session_date query string false "Session date (YYYY-MM-DD)"
// @Param update_uploads query bool false "Mark matched uploads delivered (default true)"
// @Success 200 {object} reconcile.Report
// @Failure 400 {object} reconcile.Report "Room has no address"
// @Failure 404 {object} reconcile.Report "Room not found"
// @Failure 409 {object} map[string]string "Scan already running"
// @Failure 502 {object} reconcile.Report "Share not reachable"
// @Router /rooms/{id}/scan [put]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	req, err := scanRequest(c)
	if err != nil {
		return h.fail(c, "Invalid scan request", err)
	}
	req.Commit = utils.ToBool(c.Query("update_uploads", "true"))

	report, err := h.service.Scan(c.Context(), req)
	if err != nil {
		return h.fail(c, "Room scan failed", err)
	}
	return c.Status(reportStatus(report)).JSON(report)
}

// HandleVerify reports delivered and missing uploads without touching the network.
// @Summary Verify Uploads
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Param event_id query int false "Event ID"
// @Param session_date query string false "Session date (YYYY-MM-DD)"
// @Success 200 {object} reconcile.VerifyReport
// @Failure 404 {object} map[string]string "Room not found"
// @Router /rooms/{id}/verify-uploads [post]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	req, err := scanRequest(c)
	if err != nil {
		return h.fail(c, "Invalid verify request", err)
	}
	report, err := h.service.Verify(c.Context(), req)
	if err != nil {
		return h.fail(c, "Upload verification failed", err)
	}
	return c.JSON(report)
}

// HandleScanEvent reconciles every room of an event.
// @Summary Scan Event
// @Tags rooms
// @Produce json
// @Param id path int true "Event ID"
// @Param session_date query string false "Session date (YYYY-MM-DD)"
// @Param update_uploads query bool false "Mark matched uploads delivered (default true)"
// @Success 200 {array} reconcile.Report
// @Router /events/{id}/scan [put]
func (h *Handler) HandleScanEvent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid event id", err)
	}
	date, err := utils.OptionalDate(c.Query("session_date"))
	if err != nil {
		return h.fail(c, "Invalid event scan request", fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	commit := utils.ToBool(c.Query("update_uploads", "true"))

	reports, err := h.service.ScanEvent(c.Context(), id, date, commit)
	if err != nil {
		return h.fail(c, "Event scan failed", err)
	}
	return c.JSON(reports)
}

// HandleUpdateUpload applies a partial update to an upload. Unknown fields are rejected.
// @Summary Update Upload
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path int true "Upload ID"
// @Param upload body models.UploadUpdate true "Fields to change"
// @Success 200 {object} models.Upload
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 404 {object} map[string]string "Upload not found"
// @Router /uploads/{id} [patch]
func (h *Handler) HandleUpdateUpload(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, "Invalid upload id", err)
	}
	var update models.UploadUpdate
	if err := utils.DecodeStrict(c.Body(), &update); err != nil {
		return h.fail(c, "Invalid upload body", fiber.NewError(fiber.StatusBadRequest, err.Error()))
	}
	upload, err := h.service.UpdateUpload(c.Context(), id, update)
	if err != nil {
		return h.fail(c, "Failed to update upload", err)
	}
	return c.JSON(upload)
}
