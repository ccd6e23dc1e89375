package generator

import (
	"context"
	"strings"

	"github.com/platinummonkey/proto2xsd/pkg/namespace"
	"github.com/platinummonkey/proto2xsd/pkg/protoline"
	"github.com/platinummonkey/proto2xsd/pkg/typemap"
	"github.com/platinummonkey/proto2xsd/pkg/xsdtree"
)

const unbounded = "unbounded"

type occurs struct {
	min string
	max string
}

var cardinality = map[protoline.Kind]occurs{
	protoline.KindRequired: {min: "1", max: "1"},
	protoline.KindOptional: {min: "0", max: "1"},
	protoline.KindRepeated: {min: "0", max: unbounded},
}

// fileState is the state of one file being generated
type fileState struct {
	path      string
	doc       *xsdtree.Document
	cursor    *xsdtree.Cursor
	namespace string
}

func newFileState(path string) *fileState {
	doc := xsdtree.NewDocument()
	doc.SetAttr(doc.Root(), namespace.Declaration(namespace.XSDPrefix), namespace.XSDNamespace)

	return &fileState{
		path:   path,
		doc:    doc,
		cursor: xsdtree.NewCursor(doc),
	}
}

func (r *Run) interpret(ctx context.Context, st *fileState, line protoline.Line) error {
	if line.IsField() {
		return r.onField(st, line)
	}

	switch line.Kind {
	case protoline.KindPackage:
		return r.onPackage(st, line)
	case protoline.KindImport:
		return r.onImport(ctx, st, line)
	case protoline.KindMessage:
		return r.onMessage(st, line)
	case protoline.KindExtend:
		return r.onExtend(st, line)
	case protoline.KindClose:
		return nil
	default:
		r.log.WithField("file", st.path).
			WithField("line", line.Number).
			Warnf("Unknown reserved word: %s", line.Keyword())
		return nil
	}
}

func (r *Run) onPackage(st *fileState, line protoline.Line) error {
	pkg, ok := line.Arg(1)
	if !ok {
		return malformed(st, line)
	}

	st.namespace = namespace.FromPackage(pkg)
	st.doc.SetAttr(st.doc.Root(), namespace.Declaration(namespace.LocalPrefix), st.namespace)
	return nil
}

func (r *Run) onImport(ctx context.Context, st *fileState, line protoline.Line) error {
	target, ok := importTarget(line)
	if !ok {
		return malformed(st, line)
	}
	if strings.Contains(target, "option") {
		return nil
	}

	importPath := unquote(target)
	scanned, err := r.scanImport(ctx, importPath, st.namespace)
	if err != nil {
		return err
	}

	root := st.doc.Root()
	imp := st.doc.AppendChild(root, xsdtree.TagImport,
		xsdtree.A("schemaLocation", namespace.RewriteToken(importPath)))

	if scanned.Namespace != "" && scanned.Namespace != st.namespace {
		st.doc.SetAttr(imp, "namespace", scanned.Namespace)
	}
	// Nested imports may bind prefixes even when the direct import shares
	// the document namespace
	for _, alias := range scanned.Aliases {
		if uri, ok := r.namespaces.Lookup(alias); ok {
			st.doc.SetAttr(root, namespace.Declaration(alias), uri)
		}
	}
	return nil
}

func (r *Run) onMessage(st *fileState, line protoline.Line) error {
	name, ok := line.Arg(1)
	if !ok {
		return malformed(st, line)
	}

	st.cursor.OpenTopLevel(xsdtree.TagComplexType, xsdtree.A("name", name))
	return nil
}

func (r *Run) onExtend(st *fileState, line protoline.Line) error {
	base, ok := line.Arg(1)
	if !ok {
		return malformed(st, line)
	}

	st.cursor.Descend(xsdtree.TagComplexContent)
	st.cursor.Descend(xsdtree.TagExtension,
		xsdtree.A("base", namespace.Qualify(namespace.LocalPrefix, base)))
	return nil
}

func (r *Run) onField(st *fileState, line protoline.Line) error {
	// Cardinality of required fields cannot be expressed on an extension
	if line.Kind == protoline.KindRequired && st.cursor.Tag() == xsdtree.TagExtension {
		return nil
	}

	fieldType, ok := line.Arg(1)
	if !ok {
		return malformed(st, line)
	}
	name, ok := line.Arg(2)
	if !ok {
		return malformed(st, line)
	}

	if st.cursor.Tag() != xsdtree.TagSequence {
		st.cursor.Descend(xsdtree.TagSequence)
	}

	occ := cardinality[line.Kind]
	st.cursor.Append(xsdtree.TagElement,
		xsdtree.A("name", name),
		xsdtree.A("type", typemap.Map(fieldType, r.registry)),
		xsdtree.A("minOccurs", occ.min),
		xsdtree.A("maxOccurs", occ.max),
	)
	return nil
}

// importTarget returns the path token of an import line, skipping the
// public and weak modifiers
func importTarget(line protoline.Line) (string, bool) {
	target, ok := line.Arg(1)
	if !ok {
		return "", false
	}
	if target == "public" || target == "weak" {
		return line.Arg(2)
	}
	return target, true
}

func unquote(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
