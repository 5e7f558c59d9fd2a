package syncer

import (
	"errors"
	"fmt"
)

// Step names a stage of the local to remote sync.
type Step string

const (
	StepReadLocal    Step = "read_local"
	StepFetchFoods   Step = "fetch_remote_foods"
	StepInsertFoods  Step = "insert_foods"
	StepRefetchFoods Step = "refetch_remote_foods"
	StepFetchLogs    Step = "fetch_remote_logs"
	StepInsertLogs   Step = "insert_logs"
	StepClearLocal   Step = "clear_local"
)

var (
	ErrUserRequired      = errors.New("a signed-in user is required")
	ErrUnknownTransition = errors.New("unknown session transition")
)

// SyncError reports the step at which a sync stopped. Rows written by
// earlier steps stay in place and the local store is left untouched.
type SyncError struct {
	Step Step
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Step, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }
