package syncer

import (
	"context"

	"better-food-logs/core/metrics"
	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"

	"go.uber.org/zap"
)

// TransitionKind is a change in the signed-in user.
type TransitionKind string

const (
	SignedIn  TransitionKind = "signed_in"
	SignedOut TransitionKind = "signed_out"
)

// Transition is one authentication event for a device.
type Transition struct {
	Kind     TransitionKind
	UserID   string
	DeviceID string
}

// Outcome reports what a transition did. Failures of the individual steps
// are recorded here and in the logs; they never fail the transition.
type Outcome struct {
	Event             TransitionKind `json:"event"`
	RemoteFoodsSeeded int            `json:"remote_foods_seeded"`
	LocalSeeded       bool           `json:"local_seeded"`
	Sync              *Report        `json:"sync,omitempty"`
	SyncError         string         `json:"sync_error,omitempty"`
	Consistency       *Result        `json:"consistency,omitempty"`
}

// Service reacts to sign-in and sign-out.
type Service struct {
	locals    *local.Provider
	store     remote.Store
	sync      *Synchronizer
	validator *Validator
	logger    *zap.Logger
}

// NewService wires a synchronizer and validator over store.
func NewService(locals *local.Provider, store remote.Store, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		locals:    locals,
		store:     store,
		sync:      NewSynchronizer(store, logger, m),
		validator: NewValidator(store, logger, m),
		logger:    logger,
	}
}

// Validator returns the consistency validator.
func (s *Service) Validator() *Validator {
	return s.validator
}

// Synchronizer returns the local to remote synchronizer.
func (s *Service) Synchronizer() *Synchronizer {
	return s.sync
}

// HandleTransition runs the work attached to an authentication event.
// Signing in seeds an empty remote catalog, moves the device's local data
// to the user and repairs orphaned logs. Signing out reseeds the device's
// local foods.
func (s *Service) HandleTransition(ctx context.Context, t Transition) (*Outcome, error) {
	l := s.logger.With(zap.String("event", string(t.Kind)), zap.String("device_id", t.DeviceID))
	out := &Outcome{Event: t.Kind}

	switch t.Kind {
	case SignedIn:
		if t.UserID == "" || t.UserID == models.AnonymousUserID {
			return nil, ErrUserRequired
		}
		l = l.With(zap.String("user_id", t.UserID))

		n, err := catalog.EnsureRemote(ctx, s.store)
		if err != nil {
			l.Warn("Failed to seed remote foods", zap.Error(err))
		}
		out.RemoteFoodsSeeded = n

		report, err := s.sync.SyncLocalToRemote(ctx, s.locals.For(t.DeviceID), t.UserID)
		out.Sync = report
		if err != nil {
			out.SyncError = err.Error()
		}

		res := s.validator.Validate(ctx, t.UserID)
		out.Consistency = &res
		if len(res.Errors) > 0 {
			l.Warn("Consistency check reported problems", zap.Strings("errors", res.Errors))
		}
		return out, nil

	case SignedOut:
		seeded, err := catalog.EnsureLocal(ctx, s.locals.For(t.DeviceID))
		if err != nil {
			return nil, err
		}
		out.LocalSeeded = seeded
		l.Info("Signed out")
		return out, nil

	default:
		return nil, ErrUnknownTransition
	}
}
