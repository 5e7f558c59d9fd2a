// Package middleware contains HTTP middleware for the Fiber application.
//
//   - rayid: assigns every request a RayID for log correlation.
//   - auth: verifies optional bearer tokens and exposes the caller's identity.
package middleware
