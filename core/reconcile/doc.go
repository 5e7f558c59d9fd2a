// Package reconcile checks that every reference in one data set resolves to a
// row in another, and repairs the references that do not.
//
// An Adapter loads the references (key to referrer ids) and resolves the
// referenced keys on the target side in one batch. ReconcileWithPlan turns
// that into per-key results, a summary and, with DoPurge, one
// delete_referrers action per missing key. ApplyPlan executes the actions
// only when the options are confirmed and not a dry run, through the
// adapter's BatchMutator. ReconcileAndApply does both in one call.
//
// Load failures come back as *LoadError so callers can tell which side of the
// relation could not be read.
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, adapter, reconcile.ReconcileOptions{DoPurge: true})
//	_, removed, err := reconcile.ApplyPlan(ctx, adapter, plan, reconcile.ReconcileOptions{DoPurge: true, Confirmed: true})
package reconcile
