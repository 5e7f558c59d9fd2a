// Package utils provides loose conversion helpers for values that arrive as
// query strings or untyped JSON.
package utils
