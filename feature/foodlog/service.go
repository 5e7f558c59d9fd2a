package foodlog

import (
	"context"
	"math"
	"time"

	"better-food-logs/core/metrics"
	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/identity"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/nutrition"
	"better-food-logs/feature/foodlog/remote"
	"better-food-logs/feature/foodlog/validation"

	"go.uber.org/zap"
)

// MaxPeriodDays bounds PeriodSummary.
const MaxPeriodDays = 365

// Service implements the food logging operations. Signed-in sessions use
// the remote store and fall back to the device's local store when a remote
// write fails; anonymous sessions use the local store only.
type Service struct {
	locals  *local.Provider
	remote  *remote.Adapter
	logger  *zap.Logger
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a service. adapter may be nil when no remote store is
// configured; loc sets the calendar used by summaries.
func NewService(locals *local.Provider, adapter *remote.Adapter, logger *zap.Logger, m *metrics.Metrics, loc *time.Location) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		locals:  locals,
		remote:  adapter,
		logger:  logger,
		metrics: m,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *Service) useRemote(sess Session) bool {
	return s.remote != nil && sess.Authenticated()
}

// LoadFoods returns the foods available to the session. Remote foods are
// used when present and cached on the device, otherwise the local list
// seeded with the starter catalog.
func (s *Service) LoadFoods(ctx context.Context, sess Session) ([]models.Food, error) {
	store := s.locals.For(sess.DeviceID)
	if s.useRemote(sess) {
		if foods := s.remote.GetFoods(ctx); len(foods) > 0 {
			if err := store.SaveRemoteFoods(ctx, foods); err != nil {
				s.logger.Warn("Failed to cache remote foods", zap.String("namespace", store.Namespace()), zap.Error(err))
			}
			return foods, nil
		}
	}

	if seeded, err := catalog.EnsureLocal(ctx, store); err != nil {
		return nil, err
	} else if seeded {
		s.logger.Info("Seeded local foods", zap.String("namespace", store.Namespace()), zap.String("version", catalog.Version))
	}
	return store.Foods(ctx)
}

// LoadFoodLogs returns the session's logs with foods attached, newest first.
// Logs whose food cannot be resolved are left out.
func (s *Service) LoadFoodLogs(ctx context.Context, sess Session) ([]models.FoodLog, error) {
	if s.useRemote(sess) {
		return s.remote.GetFoodLogs(ctx, sess.UserID), nil
	}
	return s.locals.For(sess.DeviceID).JoinedLogs(ctx)
}

// CreateFood cleans, validates and deduplicates in, then stores it.
func (s *Service) CreateFood(ctx context.Context, sess Session, in validation.FoodInput) (models.Food, error) {
	in = validation.Clean(in)
	if res := validation.Validate(in); !res.IsValid {
		return models.Food{}, &ValidationError{Errors: res.Errors}
	}

	existing, err := s.LoadFoods(ctx, sess)
	if err != nil {
		return models.Food{}, err
	}
	if validation.IsDuplicate(in, existing) {
		return models.Food{}, &DuplicateError{Name: in.Name}
	}

	food := in.ToFood()
	if s.useRemote(sess) {
		if created := s.remote.AddFood(ctx, food); created != nil {
			return *created, nil
		}
		s.fallback("create_food", sess)
	}
	return s.locals.For(sess.DeviceID).AddFood(ctx, food)
}

// LogFood records servings of food foodID consumed now.
func (s *Service) LogFood(ctx context.Context, sess Session, foodID string, servings float64) (models.FoodLog, error) {
	servings, err := normalizeServings(servings)
	if err != nil {
		return models.FoodLog{}, err
	}

	store := s.locals.For(sess.DeviceID)
	log := models.FoodLog{
		UserID:           sess.Owner(),
		FoodID:           foodID,
		ServingsConsumed: servings,
		ConsumedDate:     s.now().UnixMilli(),
	}

	var source *models.Food
	if s.useRemote(sess) {
		resolved, src, err := s.resolveRemoteFood(ctx, store, foodID)
		if err != nil {
			return models.FoodLog{}, err
		}
		source = src
		if resolved != nil {
			remoteLog := log
			remoteLog.FoodID = resolved.ID
			if saved := s.remote.AddFoodLog(ctx, remoteLog); saved != nil {
				saved.Food = resolved
				return *saved, nil
			}
		}
		s.fallback("log_food", sess)
	}
	return s.logLocally(ctx, store, log, source)
}

// resolveRemoteFood maps foodID to a remote food. A local food is matched
// by signature and inserted remotely when no remote food carries it, so a
// remote log never names a local-only id. source is the food foodID names in
// whichever store holds it, falling back to the device's cached remote
// foods; resolved is nil when the remote store failed.
func (s *Service) resolveRemoteFood(ctx context.Context, store *local.Store, foodID string) (resolved, source *models.Food, err error) {
	remoteFoods := s.remote.GetFoods(ctx)
	if f, ok := findFood(remoteFoods, foodID); ok {
		return &f, &f, nil
	}

	localFoods, err := store.Foods(ctx)
	if err != nil {
		return nil, nil, err
	}
	src, ok := findFood(localFoods, foodID)
	if !ok {
		cached, err := store.RemoteFoods(ctx)
		if err != nil {
			return nil, nil, err
		}
		if src, ok = findFood(cached, foodID); !ok {
			return nil, nil, ErrFoodNotFound
		}
	}

	byContent := src
	byContent.ID = ""
	if match, ok := identity.Find(remoteFoods, byContent); ok {
		return &match, &src, nil
	}
	if added := s.remote.AddFood(ctx, src); added != nil {
		return added, &src, nil
	}
	return nil, &src, nil
}

// logLocally appends log to store. A food known only from the remote store
// is copied locally first so the log resolves.
func (s *Service) logLocally(ctx context.Context, store *local.Store, log models.FoodLog, source *models.Food) (models.FoodLog, error) {
	foods, err := store.Foods(ctx)
	if err != nil {
		return models.FoodLog{}, err
	}
	food, ok := findFood(foods, log.FoodID)
	if !ok {
		if source == nil {
			return models.FoodLog{}, ErrFoodNotFound
		}
		if food, err = store.AddFood(ctx, *source); err != nil {
			return models.FoodLog{}, err
		}
	}

	saved, err := store.AddFoodLog(ctx, log)
	if err != nil {
		return models.FoodLog{}, err
	}
	saved.Food = &food
	return saved, nil
}

// EditLog changes the servings of log id.
func (s *Service) EditLog(ctx context.Context, sess Session, id string, servings float64) error {
	servings, err := normalizeServings(servings)
	if err != nil {
		return err
	}
	if s.useRemote(sess) {
		if updated := s.remote.UpdateFoodLog(ctx, sess.UserID, id, servings); updated != nil {
			return nil
		}
		s.fallback("edit_log", sess)
	}

	ok, err := s.locals.For(sess.DeviceID).UpdateFoodLog(ctx, id, servings)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLogNotFound
	}
	return nil
}

// DeleteLog removes log id.
func (s *Service) DeleteLog(ctx context.Context, sess Session, id string) error {
	if s.useRemote(sess) {
		if s.remote.DeleteFoodLog(ctx, sess.UserID, id) {
			return nil
		}
		s.fallback("delete_log", sess)
	}

	ok, err := s.locals.For(sess.DeviceID).DeleteFoodLog(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLogNotFound
	}
	return nil
}

// TodaySummary totals the session's logs consumed today.
func (s *Service) TodaySummary(ctx context.Context, sess Session) (models.NutritionSummary, error) {
	logs, err := s.LoadFoodLogs(ctx, sess)
	if err != nil {
		return models.NutritionSummary{}, err
	}
	return nutrition.Summarize(nutrition.OnDay(logs, s.now(), s.loc)), nil
}

// PeriodSummary reports on the last days calendar days, today included.
func (s *Service) PeriodSummary(ctx context.Context, sess Session, days int) (nutrition.PeriodReport, error) {
	if days < 1 || days > MaxPeriodDays {
		return nutrition.PeriodReport{}, ErrInvalidPeriod
	}
	logs, err := s.LoadFoodLogs(ctx, sess)
	if err != nil {
		return nutrition.PeriodReport{}, err
	}
	return nutrition.Report(logs, s.now(), days, s.loc), nil
}

func (s *Service) fallback(op string, sess Session) {
	s.metrics.LocalFallback(op)
	s.logger.Warn("Remote write failed, using local store",
		zap.String("op", op),
		zap.String("user_id", sess.UserID),
		zap.String("device_id", sess.DeviceID),
	)
}

// normalizeServings rounds to hundredths and rejects non-positive values.
func normalizeServings(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidServings
	}
	v = validation.FormatNumber(v)
	if v <= 0 {
		return 0, ErrInvalidServings
	}
	return v, nil
}

func findFood(foods []models.Food, id string) (models.Food, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.Food{}, false
}
