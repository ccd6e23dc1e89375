// Package observability provides logger construction, signal handling and
// panic recovery for proto2xsd.
//
// # Overview
//
// All packages log through an injected *logrus.Logger. This package builds
// that logger from the configured level and supplies the process-level
// plumbing shared by the one-shot and watch modes.
//
// # Structured Logging
//
// Create logger:
//
//	logger := observability.NewLogger("debug", os.Stderr)
//	logger.WithField("file", "person.proto").Info("reading file")
//
// Unknown levels fall back to info:
//
//	observability.ParseLevel("verbose") // logrus.InfoLevel
//
// # Shutdown
//
// Cancel a context on SIGINT or SIGTERM:
//
//	ctx, stop := observability.SignalContext(context.Background(), logger)
//	defer stop()
//
// # Panic Recovery
//
//	defer observability.RecoverPanic(logger, "regenerate person.proto")
//
// # Related Packages
//
//   - pkg/cli: Builds the logger from configuration
//   - pkg/watch: Recovers panics raised while regenerating
package observability
