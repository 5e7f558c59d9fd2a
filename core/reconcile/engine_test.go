package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAll(t *testing.T) {
	adapter := &mockAdapter{
		refs: map[string][]string{
			"food-b": {"log-3"},
			"food-a": {"log-2", "log-1"},
		},
		targets: map[string]struct{}{"food-a": {}},
	}

	results, err := ReconcileAll(context.Background(), adapter)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, ReconcileResult{ID: "food-a", TargetPresent: true, Referrers: []string{"log-1", "log-2"}}, results[0])
	assert.Equal(t, ReconcileResult{ID: "food-b", TargetPresent: false, Referrers: []string{"log-3"}}, results[1])
	assert.True(t, results[1].Orphaned())

	// Targets are resolved in a single batch.
	assert.Equal(t, [][]string{{"food-a", "food-b"}}, adapter.lookedUp)
}

func TestReconcileAll_NoReferences(t *testing.T) {
	adapter := &mockAdapter{refs: map[string][]string{}}

	results, err := ReconcileAll(context.Background(), adapter)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, adapter.lookedUp)
}

func TestReconcileAll_LoadErrors(t *testing.T) {
	t.Run("References", func(t *testing.T) {
		adapter := &mockAdapter{refsErr: errors.New("timeout")}
		_, err := ReconcileAll(context.Background(), adapter)

		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, StageReferences, le.Stage)
		assert.EqualError(t, err, "reconcile mock: load references: timeout")
	})

	t.Run("Targets", func(t *testing.T) {
		adapter := &mockAdapter{
			refs:       map[string][]string{"food-a": {"log-1"}},
			targetsErr: errors.New("permission denied"),
		}
		_, err := ReconcileAll(context.Background(), adapter)

		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, StageTargets, le.Stage)
		assert.EqualError(t, errors.Unwrap(err), "permission denied")
	})
}

func TestReconcileOne(t *testing.T) {
	adapter := &mockAdapter{
		refs:    map[string][]string{"food-a": {"log-1"}},
		targets: map[string]struct{}{},
	}

	result, err := ReconcileOne(context.Background(), adapter, "food-a")
	require.NoError(t, err)
	assert.True(t, result.Orphaned())

	result, err = ReconcileOne(context.Background(), adapter, "food-z")
	require.NoError(t, err)
	assert.False(t, result.Orphaned())
	assert.Empty(t, result.Referrers)
}
