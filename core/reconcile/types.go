package reconcile

import "fmt"

// ReconcileResult is the reconciliation output for one referenced key.
type ReconcileResult struct {
	// ID is the referenced key.
	ID string `json:"id"`

	// TargetPresent reports whether the key resolved on the target side.
	TargetPresent bool `json:"target_present"`

	// Referrers lists the ids pointing at this key.
	Referrers []string `json:"referrers"`
}

// Orphaned reports whether the key is referenced but missing.
func (r ReconcileResult) Orphaned() bool {
	return !r.TargetPresent && len(r.Referrers) > 0
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteReferrers deletes every referrer of a missing key.
	ActionDeleteReferrers ActionType = "delete_referrers"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the missing referenced key.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Referrers is how many rows the action is expected to remove.
	Referrers int `json:"referrers"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	Results []ReconcileResult `json:"results"`
	Actions []Action          `json:"actions"`
	Summary PlanSummary       `json:"summary"`
}

// MissingKeys returns the referenced keys that did not resolve, in result
// order.
func (p *ReconcilePlan) MissingKeys() []string {
	var keys []string
	for _, r := range p.Results {
		if !r.TargetPresent {
			keys = append(keys, r.ID)
		}
	}
	return keys
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalKeys is the number of distinct referenced keys.
	TotalKeys int `json:"total_keys"`

	// MissingTargets counts referenced keys absent on the target side.
	MissingTargets int `json:"missing_targets"`

	// OrphanedReferrers counts referrers pointing at missing keys.
	OrphanedReferrers int `json:"orphaned_referrers"`

	// PurgeActions counts planned delete actions.
	PurgeActions int `json:"purge_actions"`
}

// ReconcileOptions controls reconcile behavior.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of referrers whose key is missing.
	DoPurge bool

	// Confirmed indicates the caller accepted destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}

// Stage names the load step that failed.
type Stage string

const (
	StageReferences Stage = "references"
	StageTargets    Stage = "targets"
)

// LoadError is returned when an adapter fails to load one side of the
// relation. Extractable via errors.As(). Supports Unwrap().
type LoadError struct {
	Adapter string
	Stage   Stage
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("reconcile %s: load %s: %v", e.Adapter, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
