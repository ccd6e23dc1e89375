package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/protoline"
	"github.com/platinummonkey/proto2xsd/pkg/source"
	"github.com/platinummonkey/proto2xsd/pkg/typemap"
	"github.com/platinummonkey/proto2xsd/pkg/xsdtree"
	"github.com/sirupsen/logrus"
)

// ErrMalformedLine is returned for a declaration missing a required token
var ErrMalformedLine = errors.New("malformed line")

// Options are the processing flags of a run. They are passed unchanged to
// every import processed by the run.
type Options struct {
	// GenerateImports generates a schema for every scanned import
	GenerateImports bool
	// IgnoreMissingImports continues when an import cannot be read
	IgnoreMissingImports bool
	// RecursiveImports scans the imports of imported files
	RecursiveImports bool
	// DryRun prints schemas instead of writing files
	DryRun bool
}

// Config configures a Run
type Config struct {
	Options Options
	// AliasStripPrefix is removed from import file names before deriving prefixes
	AliasStripPrefix string
}

// Sink receives finished schema documents
type Sink interface {
	Emit(doc *xsdtree.Document, inputPath string, dryRun bool) (string, error)
}

// Result describes one generated schema
type Result struct {
	Input    string
	Output   string // empty for dry runs
	Document *xsdtree.Document
}

// LineError locates a fatal error in a source file
type LineError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.File, e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Run holds the state of one invocation
type Run struct {
	id          string
	opts        Options
	stripPrefix string
	resolver    source.Resolver
	sink        Sink
	log         *logrus.Entry

	registry   *typemap.Registry
	namespaces *namespace.Table

	generated map[string]bool
	scanning  []string
	results   []Result
}

// NewRun creates a run. The registry and namespace table start empty.
func NewRun(cfg Config, resolver source.Resolver, sink Sink, log *logrus.Logger) *Run {
	if log == nil {
		log = logrus.New()
	}

	id := uuid.NewString()
	return &Run{
		id:          id,
		opts:        cfg.Options,
		stripPrefix: cfg.AliasStripPrefix,
		resolver:    resolver,
		sink:        sink,
		log:         log.WithField("run_id", id),
		registry:    typemap.NewRegistry(),
		namespaces:  namespace.NewTable(),
		generated:   make(map[string]bool),
	}
}

// ID returns the run identifier used in logs
func (r *Run) ID() string {
	return r.id
}

// Options returns the processing options
func (r *Run) Options() Options {
	return r.opts
}

// Registry returns the imported type registry
func (r *Run) Registry() *typemap.Registry {
	return r.registry
}

// Namespaces returns the imported namespace table
func (r *Run) Namespaces() *namespace.Table {
	return r.namespaces
}

// Results returns every schema generated so far, imports included, in
// completion order
func (r *Run) Results() []Result {
	return append([]Result(nil), r.results...)
}

// Generate builds the schema of a file and emits it. Nothing is emitted when
// the file fails. A file already generated by this run is skipped and yields
// a nil Result.
func (r *Run) Generate(ctx context.Context, name string) (*Result, error) {
	return r.generate(ctx, name)
}

// Build interprets a file and returns its schema without emitting it
func (r *Run) Build(ctx context.Context, name string) (*xsdtree.Document, error) {
	path := r.resolver.Resolve(name)
	log := r.log.WithField("file", path)
	log.Info("reading file")

	lines, err := r.resolver.Lines(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	st := newFileState(path)
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.interpret(ctx, st, line); err != nil {
			return nil, err
		}
	}

	return st.doc, nil
}

func (r *Run) generate(ctx context.Context, name string) (*Result, error) {
	path := r.resolver.Resolve(name)
	if r.generated[path] {
		r.log.WithField("file", path).Debug("schema already generated in this run")
		return nil, nil
	}
	r.generated[path] = true

	doc, err := r.Build(ctx, name)
	if err != nil {
		return nil, err
	}

	output, err := r.sink.Emit(doc, name, r.opts.DryRun)
	if err != nil {
		return nil, err
	}

	result := Result{Input: path, Output: output, Document: doc}
	r.results = append(r.results, result)
	return &result, nil
}

func malformed(st *fileState, line protoline.Line) error {
	return &LineError{File: st.path, Line: line.Number, Text: line.Text, Err: ErrMalformedLine}
}
