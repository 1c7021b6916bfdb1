package journal

import (
	"storage-facade/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the journal.
type Handler struct {
	journal *Journal
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(journal *Journal, logger *zap.Logger) *Handler {
	return &Handler{journal: journal, logger: logger}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/journal", h.HandleRecent)
}

// HandleRecent lists the most recent mutations.
// @Summary List Journal
// @Description Lists the most recent storage mutations, newest first.
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Maximum number of entries, at most 1000" default(50)
// @Success 200 {array} journal.Entry "Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /journal [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	entries, err := h.journal.Recent(c.UserContext(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Journal read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}
