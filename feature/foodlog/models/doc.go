// Package models defines the Food, FoodLog and NutritionSummary shapes shared
// by the local store, the remote adapter and the HTTP API. JSON field names
// match the persisted local layout.
package models
