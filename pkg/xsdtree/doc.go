// Package xsdtree holds an XML Schema document while it is being built.
//
// # Overview
//
// Nodes live in an arena owned by a Document and are addressed by NodeID.
// Every node except the schema root has exactly one parent, fixed when the
// node is appended. Attributes and children keep insertion order, which is
// the order they are serialized in.
//
// A Cursor marks where the next nodes attach. It can only move onto nodes it
// has just created, so it never returns to an ancestor:
//
//	doc := xsdtree.NewDocument()
//	cur := xsdtree.NewCursor(doc)
//	cur.OpenTopLevel(xsdtree.TagComplexType, xsdtree.A("name", "Person"))
//	cur.Descend(xsdtree.TagSequence)
//	cur.Append(xsdtree.TagElement, xsdtree.A("name", "id"))
//
// Tags are stored without a namespace prefix; pkg/emitter adds it.
package xsdtree
