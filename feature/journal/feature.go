package journal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the journal over HTTP when a journal is available.
type Feature struct {
	journal *Journal
	logger  *zap.Logger
}

// NewFeature creates the journal feature. A nil journal disables it.
func NewFeature(journal *Journal, logger *zap.Logger) *Feature {
	return &Feature{journal: journal, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "journal"
}

// IsEnabled reports whether a journal is configured.
func (f *Feature) IsEnabled() bool {
	return f.journal != nil
}

// Load registers the journal routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.journal, f.logger).RegisterRoutes(app)
	return nil
}
