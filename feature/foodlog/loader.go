package foodlog

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the food log feature around svc.
func NewFeature(svc *Service, deviceHeader string) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, deviceHeader)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "foodlog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
