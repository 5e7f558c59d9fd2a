// Package syncer keeps a user's remote data whole across sign-in.
//
// On sign-in the device's local foods and logs are copied to the remote
// store under the user. Foods are matched by content signature because local
// and remote ids are generated independently; logs are matched by food,
// timestamp and servings. The local store is cleared only after every step
// succeeds, so a failed run is retried on the next sign-in.
//
// The Validator then looks for remote logs whose food is gone and deletes
// them, using the reconcile engine for the reference check.
package syncer
