// Package metrics exposes prometheus counters for sync runs, orphan repair,
// remote failures and local fallbacks, plus a Fiber handler for /metrics.
package metrics
