package emitter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/moby/sys/atomicwriter"
	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/xsdtree"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultIndent is the number of spaces per nesting level
	DefaultIndent = 4

	xmlDeclaration = `version="1.0" encoding="UTF-8" standalone="no"`
)

// Config controls where and how schemas are written
type Config struct {
	OutputDir string
	Indent    int
	// Stdout receives dry-run output; os.Stdout when nil
	Stdout io.Writer
}

// Emitter writes schema documents
type Emitter struct {
	config Config
	log    *logrus.Logger
}

// New creates an emitter
func New(config Config, log *logrus.Logger) *Emitter {
	if log == nil {
		log = logrus.New()
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.Indent <= 0 {
		config.Indent = DefaultIndent
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	return &Emitter{config: config, log: log}
}

// OutputName returns the schema file name generated for an input file
func OutputName(inputPath string) string {
	return namespace.RewriteToken(filepath.Base(inputPath))
}

// Render converts a schema tree into an etree document
func Render(doc *xsdtree.Document, indent int) *etree.Document {
	out := etree.NewDocument()
	out.CreateProcInst("xml", xmlDeclaration)

	elements := make(map[xsdtree.NodeID]*etree.Element, doc.Len())
	_ = doc.Walk(doc.Root(), func(id xsdtree.NodeID, _ int) error {
		n := doc.Node(id)
		tag := namespace.Qualify(namespace.XSDPrefix, n.Tag)

		var el *etree.Element
		if n.Parent == xsdtree.NoParent {
			el = out.CreateElement(tag)
		} else {
			el = elements[n.Parent].CreateElement(tag)
		}
		for _, attr := range n.Attrs {
			el.CreateAttr(attr.Key, attr.Value)
		}
		elements[id] = el
		return nil
	})

	out.Indent(indent)
	return out
}

// Write serializes doc to w
func (e *Emitter) Write(w io.Writer, doc *xsdtree.Document) error {
	if _, err := Render(doc, e.config.Indent).WriteTo(w); err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}
	return nil
}

// Emit writes doc for inputPath. A dry run prints to the configured stdout
// and returns an empty path; otherwise the written file path is returned.
func (e *Emitter) Emit(doc *xsdtree.Document, inputPath string, dryRun bool) (string, error) {
	if dryRun {
		return "", e.Write(e.config.Stdout, doc)
	}

	var buf bytes.Buffer
	if err := e.Write(&buf, doc); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.config.OutputDir, OutputName(inputPath))
	if err := atomicwriter.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write schema %s: %w", path, err)
	}

	e.log.WithField("path", path).Info("schema written")
	return path, nil
}
