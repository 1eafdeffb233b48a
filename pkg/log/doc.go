// Package log provides the structured logging abstraction used across
// appflow.
//
// The [Logger] interface decouples the engine from any concrete logging
// library. The default adapter wraps zerolog; [NoopLogger] discards
// everything and is the default when no logger is configured.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	logger.Info("status transition",
//	    log.String("from", "Offered"),
//	    log.String("to", "Offer Accepted"),
//	)
package log
