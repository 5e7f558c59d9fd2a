package checks

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"better-food-logs/core/kv"

	"github.com/google/uuid"
)

// probeKey is written and removed by CheckLocal. It lives outside every
// device namespace.
var probeKey = kv.Key("integrity", "probe")

// LocalReport is the result of a local backend round trip.
type LocalReport struct {
	Driver    string `json:"driver"`
	Status    string `json:"status"` // "ok", "error"
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// CheckLocal writes, reads back and deletes a probe value.
func CheckLocal(ctx context.Context, store kv.Store, driver string) LocalReport {
	report := LocalReport{Driver: driver, Status: "ok"}
	start := time.Now()
	if err := probe(ctx, store); err != nil {
		report.Status = "error"
		report.Error = err.Error()
	}
	report.LatencyMs = time.Since(start).Milliseconds()
	return report
}

func probe(ctx context.Context, store kv.Store) error {
	want := []byte(uuid.NewString())
	if err := store.Set(ctx, probeKey, want); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	got, err := store.Get(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("read back %d bytes that differ from the probe", len(got))
	}
	if err := store.Delete(ctx, probeKey); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
