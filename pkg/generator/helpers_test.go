package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/source"
	"github.com/platinummonkey/proto2xsd/pkg/xsdtree"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	inputs []string
	docs   []*xsdtree.Document
	err    error
}

func (s *recordingSink) Emit(doc *xsdtree.Document, inputPath string, dryRun bool) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.inputs = append(s.inputs, inputPath)
	s.docs = append(s.docs, doc)
	if dryRun {
		return "", nil
	}
	return namespace.RewriteToken(inputPath), nil
}

var errSinkFailed = errors.New("sink failed")

type fixture struct {
	dir  string
	sink *recordingSink
	hook *test.Hook
	log  *logrus.Logger
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	return &fixture{dir: dir, sink: &recordingSink{}, hook: hook, log: log}
}

func (f *fixture) run(t *testing.T, opts Options) *Run {
	t.Helper()
	resolver, err := source.NewFileResolver(f.dir, 16)
	require.NoError(t, err)
	return NewRun(Config{Options: opts, AliasStripPrefix: namespace.DefaultStripPrefix}, resolver, f.sink, f.log)
}

func (f *fixture) build(t *testing.T, opts Options, name string) *xsdtree.Document {
	t.Helper()
	doc, err := f.run(t, opts).Build(context.Background(), name)
	require.NoError(t, err)
	return doc
}

func attrs(doc *xsdtree.Document, id xsdtree.NodeID) map[string]string {
	out := make(map[string]string)
	for _, a := range doc.Node(id).Attrs {
		out[a.Key] = a.Value
	}
	return out
}

func childrenTagged(doc *xsdtree.Document, id xsdtree.NodeID, tag string) []xsdtree.NodeID {
	var out []xsdtree.NodeID
	for _, child := range doc.Children(id) {
		if doc.Tag(child) == tag {
			out = append(out, child)
		}
	}
	return out
}

// complexType returns the top-level complex type with the given name
func complexType(t *testing.T, doc *xsdtree.Document, name string) xsdtree.NodeID {
	t.Helper()
	for _, id := range childrenTagged(doc, doc.Root(), xsdtree.TagComplexType) {
		if attrs(doc, id)["name"] == name {
			return id
		}
	}
	t.Fatalf("complexType %s not found", name)
	return 0
}

// fields returns the elements of the single sequence below id
func fields(t *testing.T, doc *xsdtree.Document, id xsdtree.NodeID) []map[string]string {
	t.Helper()
	seqs := childrenTagged(doc, id, xsdtree.TagSequence)
	require.Len(t, seqs, 1)

	var out []map[string]string
	for _, el := range doc.Children(seqs[0]) {
		require.Equal(t, xsdtree.TagElement, doc.Tag(el))
		out = append(out, attrs(doc, el))
	}
	return out
}
