// Package catalog holds the starter foods installed into empty stores.
package catalog
