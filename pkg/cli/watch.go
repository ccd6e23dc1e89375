package cli

import (
	"context"
	"path/filepath"

	"github.com/platinummonkey/proto2xsd/pkg/watch"
)

// watch regenerates the input file whenever a proto file next to it or in
// the base directory changes, until ctx is cancelled
func (s *session) watch(ctx context.Context) error {
	dirs := []string{
		filepath.Dir(s.resolver.Resolve(s.inv.File)),
		s.resolver.BaseDir(),
	}

	w := watch.New(dirs, watch.DefaultDelay, func(ctx context.Context, changed []string) error {
		s.log.WithField("files", changed).Info("sources changed, regenerating")
		s.resolver.Purge()
		return s.generate(ctx)
	}, s.log)

	return w.Run(ctx)
}
