// Package emitter serializes schema trees as indented XML Schema documents.
//
// # Overview
//
// A tree built by pkg/generator is converted into an etree document, every
// tag qualified with the xs prefix, and written either to a writer (dry run)
// or to a file named after the input:
//
//	person.proto            -> person.xsd
//	siti.common.proto       -> siti.common.xsd
//
// Files are written atomically: a failed write never leaves a truncated
// schema behind.
//
// # Usage
//
//	e := emitter.New(emitter.Config{OutputDir: "out", Indent: 4}, logger)
//	path, err := e.Emit(doc, "siti.person.proto", false)
package emitter
