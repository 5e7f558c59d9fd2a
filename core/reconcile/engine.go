package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll resolves every referenced key against the target side and
// returns one result per key, sorted by key.
func ReconcileAll(ctx context.Context, adapter Adapter) ([]ReconcileResult, error) {
	refs, err := adapter.LoadReferences(ctx)
	if err != nil {
		return nil, &LoadError{Adapter: adapter.Name(), Stage: StageReferences, Err: err}
	}
	if len(refs) == 0 {
		return []ReconcileResult{}, nil
	}

	keys := sortedKeys(refs)

	targets, err := adapter.LoadTargets(ctx, keys)
	if err != nil {
		return nil, &LoadError{Adapter: adapter.Name(), Stage: StageTargets, Err: err}
	}

	results := make([]ReconcileResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, buildResult(key, refs[key], targets))
	}
	return results, nil
}

// ReconcileOne resolves a single key.
func ReconcileOne(ctx context.Context, adapter Adapter, key string) (*ReconcileResult, error) {
	refs, err := adapter.LoadReferences(ctx)
	if err != nil {
		return nil, &LoadError{Adapter: adapter.Name(), Stage: StageReferences, Err: err}
	}

	targets, err := adapter.LoadTargets(ctx, []string{key})
	if err != nil {
		return nil, &LoadError{Adapter: adapter.Name(), Stage: StageTargets, Err: err}
	}

	result := buildResult(key, refs[key], targets)
	return &result, nil
}

func buildResult(key string, referrers []string, targets map[string]struct{}) ReconcileResult {
	_, present := targets[key]
	sorted := append([]string(nil), referrers...)
	sort.Strings(sorted)
	return ReconcileResult{
		ID:            key,
		TargetPresent: present,
		Referrers:     sorted,
	}
}

func sortedKeys(refs map[string][]string) []string {
	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
