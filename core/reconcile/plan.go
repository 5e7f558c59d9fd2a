package reconcile

import (
	"context"
	"fmt"
)

// ReconcileWithPlan reconciles and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, adapter Adapter, opts ReconcileOptions) (*ReconcilePlan, error) {
	results, err := ReconcileAll(ctx, adapter)
	if err != nil {
		return nil, err
	}

	summary, actions := buildPlanFromResults(results, opts)
	return &ReconcilePlan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a plan and returns the number of actions
// executed and the number of referrers removed.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, adapter Adapter, plan *ReconcilePlan, opts ReconcileOptions) (executed int, removed int64, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, 0, nil
	}

	var keys []string
	for _, action := range plan.Actions {
		if action.Type == ActionDeleteReferrers {
			keys = append(keys, action.Key)
		}
	}
	if len(keys) == 0 {
		return 0, 0, nil
	}

	batch, ok := adapter.(BatchMutator)
	if !ok {
		return 0, 0, fmt.Errorf("adapter %s does not implement BatchMutator interface", adapter.Name())
	}
	n, err := batch.DeleteReferrersBatch(ctx, keys)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to batch delete referrers: %w", err)
	}
	return len(keys), n, nil
}

// ReconcileAndApply plans and, when confirmed, applies in one call. A nil
// plan with an error means loading failed; a plan with an error means the
// repair failed.
func ReconcileAndApply(ctx context.Context, adapter Adapter, opts ReconcileOptions) (*ReconcilePlan, int64, error) {
	plan, err := ReconcileWithPlan(ctx, adapter, opts)
	if err != nil {
		return nil, 0, err
	}

	_, removed, err := ApplyPlan(ctx, adapter, plan, opts)
	return plan, removed, err
}

func buildPlanFromResults(results []ReconcileResult, opts ReconcileOptions) (PlanSummary, []Action) {
	var summary PlanSummary
	var actions []Action

	summary.TotalKeys = len(results)

	for _, result := range results {
		if result.TargetPresent {
			continue
		}
		summary.MissingTargets++
		summary.OrphanedReferrers += len(result.Referrers)

		if opts.DoPurge && len(result.Referrers) > 0 {
			actions = append(actions, Action{
				Type:      ActionDeleteReferrers,
				Key:       result.ID,
				Reason:    fmt.Sprintf("missing target referenced by %d rows", len(result.Referrers)),
				Referrers: len(result.Referrers),
			})
			summary.PurgeActions++
		}
	}

	return summary, actions
}
