package integrity

import (
	"context"
	"errors"

	"better-food-logs/core/kv"
	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/identity"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"
	"better-food-logs/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrRemoteDisabled is returned by the remote checks without a database.
var ErrRemoteDisabled = errors.New("remote database is not configured")

// Service handles integrity checks.
type Service struct {
	backend kv.Store
	driver  string
	db      *gorm.DB
	store   remote.Store
	logger  *zap.Logger
}

// NewService creates a new integrity service. db and store may be nil when
// no remote database is configured.
func NewService(backend kv.Store, driver string, db *gorm.DB, store remote.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		backend: backend,
		driver:  driver,
		db:      db,
		store:   store,
		logger:  logger,
	}
}

// CheckLocal probes the local backend.
func (s *Service) CheckLocal(ctx context.Context) checks.LocalReport {
	return checks.CheckLocal(ctx, s.backend, s.driver)
}

// CheckServer validates the remote schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, ErrRemoteDisabled
	}
	return checks.CheckServer(s.db)
}

// CheckCatalog reports starter foods missing remotely.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	if s.store == nil {
		return nil, ErrRemoteDisabled
	}
	return checks.CheckCatalog(ctx, s.store)
}

// FixCatalog inserts the starter foods named in missing.
func (s *Service) FixCatalog(ctx context.Context, missing []string) (int, error) {
	if s.store == nil {
		return 0, ErrRemoteDisabled
	}
	wanted := make(map[string]struct{}, len(missing))
	for _, name := range missing {
		wanted[name] = struct{}{}
	}

	existing, err := s.store.ListFoods(ctx)
	if err != nil {
		return 0, err
	}
	present := identity.Index(existing)

	var foods []models.Food
	for _, f := range catalog.Foods() {
		if _, ok := wanted[f.Name]; !ok {
			continue
		}
		if _, ok := present[identity.Signature(f)]; ok {
			continue
		}
		foods = append(foods, f)
	}
	if len(foods) == 0 {
		return 0, nil
	}

	inserted, err := s.store.InsertFoods(ctx, foods)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Inserted missing starter foods", zap.Int("count", len(inserted)))
	return len(inserted), nil
}
