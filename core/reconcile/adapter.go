package reconcile

import "context"

// Adapter loads the two sides of a reference relation: referrers that point
// at keys, and the targets those keys should resolve to.
type Adapter interface {
	// Name identifies the relation in logs and errors (e.g. "food_logs->foods").
	Name() string

	// LoadReferences returns every referenced key mapped to the ids of the
	// referrers pointing at it.
	LoadReferences(ctx context.Context) (map[string][]string, error)

	// LoadTargets returns the subset of keys that exist on the target side.
	// Implementations should resolve all keys in one round trip.
	LoadTargets(ctx context.Context, keys []string) (map[string]struct{}, error)
}

// BatchMutator is implemented by adapters that can repair dangling
// references. ApplyPlan requires it.
type BatchMutator interface {
	// DeleteReferrersBatch removes every referrer pointing at any of keys and
	// returns how many were removed.
	DeleteReferrersBatch(ctx context.Context, keys []string) (int64, error)
}
