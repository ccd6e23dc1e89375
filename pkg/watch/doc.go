// Package watch regenerates schemas when proto sources change.
//
// # Overview
//
// A Watcher observes one or more directories with fsnotify. Write, create
// and rename events on .proto files are coalesced over a short delay and
// then reported to a Handler once. Handler errors and panics are logged
// and do not stop the watcher; it runs until its context is cancelled.
//
// # Usage
//
//	w := watch.New([]string{"./proto2xsd"}, watch.DefaultDelay, func(ctx context.Context, changed []string) error {
//		return regenerate(ctx)
//	}, logger)
//	if err := w.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Related Packages
//
//   - pkg/cli: Starts a Watcher for --watch
//   - pkg/observability: Panic recovery
package watch
