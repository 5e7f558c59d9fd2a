// Package local is the device-side store of foods and logs written while no
// user is signed in. Lists are kept as JSON values in a kv.Store, one set of
// keys per device namespace.
package local
