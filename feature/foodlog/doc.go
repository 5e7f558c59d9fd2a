// Package foodlog serves food and consumption logging to clients.
//
// A Session decides which store an operation uses. Signed-in users read and
// write the remote store; a failed remote write is retried against the
// device's local store and picked up by the next sign-in sync. Anonymous
// users only ever touch the local store.
package foodlog
