// Package logger provides a structured logging facility based on Zap.
//
// Development (debug) and production configurations are supported, with
// either console or json encoding.
//
// # Context Awareness
//
// WithRayID extracts the request RayID from a Fiber context and attaches it to
// the returned logger so every line written while serving a request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
