package syncer

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the sync feature. A nil service disables it.
func NewFeature(svc *Service, deviceHeader string) *Feature {
	f := &Feature{service: svc}
	if svc != nil {
		f.handler = NewHandler(svc, deviceHeader)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "syncer"
}

// IsEnabled checks if the feature is enabled. Without a remote store there
// is nothing to sync to.
func (f *Feature) IsEnabled() bool {
	return f.service != nil && f.service.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
