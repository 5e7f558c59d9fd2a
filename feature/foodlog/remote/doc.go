// Package remote is the server-side relational store of foods and logs.
//
// Rows differ from the application shapes: nutrient columns are nullable and
// consumed_date is an ISO-8601 string. The conversions in this package are
// the only place that maps between the two. GormStore returns errors; Adapter
// wraps it for callers that fall back to local storage and only need a
// result or nothing.
package remote
