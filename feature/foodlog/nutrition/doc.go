// Package nutrition computes totals over food logs. Nothing here rounds;
// presentation layers round for display.
package nutrition
