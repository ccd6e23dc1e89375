package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/protoline"
)

// ScanResult is what an import scan learned about an imported file
type ScanResult struct {
	// Namespace of the imported file's package, empty when unknown
	Namespace string
	// Alias qualifying the imported file's types
	Alias string
	// Aliases bound by the import and, with RecursiveImports, its own
	// imports. Their URIs live in the run's namespace table.
	Aliases []string
}

func (s *ScanResult) bind(alias string) {
	for _, a := range s.Aliases {
		if a == alias {
			return
		}
	}
	s.Aliases = append(s.Aliases, alias)
}

// scanImport registers the messages of an imported file without building a
// schema for them. primaryNS is the namespace of the file being generated.
func (r *Run) scanImport(ctx context.Context, importPath, primaryNS string) (ScanResult, error) {
	var result ScanResult

	path := r.resolver.Resolve(importPath)
	log := r.log.WithField("import", path)
	if r.isScanning(path) {
		log.Warn("import cycle, skipping")
		return result, nil
	}
	r.scanning = append(r.scanning, path)
	defer func() { r.scanning = r.scanning[:len(r.scanning)-1] }()

	log.Info("reading import")
	lines, err := r.resolver.Lines(ctx, importPath)
	if err != nil {
		if r.opts.IgnoreMissingImports && ctx.Err() == nil {
			log.WithError(err).Warn("Impossible to parse import file, ignoring")
			return result, nil
		}
		return result, fmt.Errorf("impossible to parse import file %s: %w", importPath, err)
	}

	st := &fileState{path: path}
	for _, line := range lines {
		switch line.Kind {
		case protoline.KindPackage:
			pkg, ok := line.Arg(1)
			if !ok {
				return result, malformed(st, line)
			}
			if err := r.scanPackage(&result, importPath, unquote(pkg), primaryNS); err != nil {
				return result, err
			}

		case protoline.KindImport:
			if !r.opts.RecursiveImports {
				continue
			}
			target, ok := importTarget(line)
			if !ok {
				return result, malformed(st, line)
			}
			if strings.Contains(target, "option") {
				continue
			}
			nested, err := r.scanImport(ctx, unquote(target), primaryNS)
			if err != nil {
				return result, err
			}
			for _, alias := range nested.Aliases {
				result.bind(alias)
			}

		case protoline.KindMessage:
			name, ok := line.Arg(1)
			if !ok {
				return result, malformed(st, line)
			}
			if result.Alias == "" {
				log.WithField("message", name).Debug("message declared before package, left unqualified")
				continue
			}
			r.registry.Register(name, result.Alias)
		}
	}

	if r.opts.GenerateImports {
		if _, err := r.generate(ctx, importPath); err != nil {
			return result, fmt.Errorf("failed to generate import %s: %w", importPath, err)
		}
	}

	return result, nil
}

func (r *Run) scanPackage(result *ScanResult, importPath, pkg, primaryNS string) error {
	ns := namespace.FromPackage(pkg)
	result.Namespace = ns

	if ns == primaryNS {
		result.Alias = namespace.LocalPrefix
		return nil
	}

	alias, err := namespace.AliasFromFilename(importPath, r.stripPrefix)
	if err != nil {
		return err
	}
	result.Alias = alias
	r.namespaces.Set(alias, ns)
	result.bind(alias)
	return nil
}

func (r *Run) isScanning(path string) bool {
	for _, p := range r.scanning {
		if p == path {
			return true
		}
	}
	return false
}
