// Package logger provides structured logging for the pkgbridge host
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("adapter")
//	log.Info("stream opened", logger.Fields("provider", "nuget"))
package logger
