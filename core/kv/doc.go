// Package kv provides the flat key/value backends behind the local store.
//
// Three drivers are available: memory (in-process, used by tests and single
// node deployments), object (one JSON object per key in a MinIO/S3 bucket) and
// redis (one string per key). Callers see a single Store interface and treat
// ErrNotFound as an empty value.
package kv
