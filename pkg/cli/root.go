package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/platinummonkey/proto2xsd/pkg/config"
	"github.com/platinummonkey/proto2xsd/pkg/emitter"
	"github.com/platinummonkey/proto2xsd/pkg/generator"
	"github.com/platinummonkey/proto2xsd/pkg/observability"
	"github.com/platinummonkey/proto2xsd/pkg/source"
	"github.com/sirupsen/logrus"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// Command represents the CLI command
type Command struct {
	Name        string
	Description string
	Flags       []Flag
}

// NewRootCommand creates the root command
func NewRootCommand() *Command {
	return &Command{
		Name:        "proto2xsd",
		Description: "proto2xsd - Generate XML Schemas from protobuf files",
		Flags: []Flag{
			{Short: "-g", Long: "--generate-imports", Description: "Generate a schema for every imported file"},
			{Short: "-i", Long: "--ignore-missing-imports", Description: "Continue when an import cannot be read"},
			{Short: "-r", Long: "--recursive-imports", Description: "Scan the imports of imported files"},
			{Short: "-d", Long: "--dry-run", Description: "Print schemas to stdout instead of writing files"},
			{Short: "-w", Long: "--watch", Description: "Regenerate on changes until interrupted"},
			{Short: "-h", Long: "--help", Description: "Show this help"},
			{Long: configFlag, Value: "file", Description: "Load settings from a YAML file"},
		},
	}
}

// Run executes the command and returns the exit code
func Run(args []string, stdout, stderr io.Writer) int {
	return NewRootCommand().Execute(context.Background(), args, stdout, stderr)
}

// Execute runs the command and returns the exit code. SIGINT and SIGTERM
// cancel ctx once the logger is configured.
func (c *Command) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv := ParseArgs(args)
	if inv.Help || inv.File == "" {
		c.usage(stdout)
		return ExitOK
	}

	cfg, err := config.LoadConfig(inv.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	logger := observability.NewLogger(cfg.LogLevel, stderr)
	ctx, stop := observability.SignalContext(ctx, logger)
	defer stop()

	for _, arg := range inv.Ignored {
		logger.WithField("arg", arg).Debug("ignoring argument")
	}

	s, err := newSession(cfg, inv, stdout, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	if err := s.generate(ctx); err != nil {
		if !inv.Watch {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		logger.WithError(err).Error("generation failed")
	}

	if inv.Watch {
		if err := s.watch(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
	}

	return ExitOK
}

// usage prints the command usage
func (c *Command) usage(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", c.Description)
	fmt.Fprintf(w, "Usage: %s [flags] <file>\n\n", c.Name)
	fmt.Fprintf(w, "Flags:\n")
	for _, f := range c.Flags {
		name := f.Long
		if f.Value != "" {
			name = fmt.Sprintf("%s=<%s>", f.Long, f.Value)
		}
		if f.Short != "" {
			name = f.Short + ", " + name
		}
		fmt.Fprintf(w, "  %-30s %s\n", name, f.Description)
	}
}

// session holds what is shared between the generations of one invocation
type session struct {
	inv      Invocation
	cfg      *config.Config
	resolver *source.FileResolver
	emitter  *emitter.Emitter
	log      *logrus.Logger
}

func newSession(cfg *config.Config, inv Invocation, stdout io.Writer, log *logrus.Logger) (*session, error) {
	resolver, err := source.NewFileResolver(cfg.BaseDir, cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &session{
		inv:      inv,
		cfg:      cfg,
		resolver: resolver,
		emitter: emitter.New(emitter.Config{
			OutputDir: cfg.OutputDir,
			Indent:    cfg.Indent,
			Stdout:    stdout,
		}, log),
		log: log,
	}, nil
}

// generate runs one generation with a fresh registry and namespace table
func (s *session) generate(ctx context.Context) error {
	run := generator.NewRun(generator.Config{
		Options:          s.inv.Options,
		AliasStripPrefix: s.cfg.AliasStripPrefix,
	}, s.resolver, s.emitter, s.log)

	if _, err := run.Generate(ctx, s.inv.File); err != nil {
		return err
	}

	hits, misses := s.resolver.Stats()
	s.log.WithFields(logrus.Fields{
		"run_id":       run.ID(),
		"schemas":      len(run.Results()),
		"namespaces":   run.Namespaces().Len(),
		"cache_hits":   hits,
		"cache_misses": misses,
	}).Debug("generation complete")
	return nil
}
