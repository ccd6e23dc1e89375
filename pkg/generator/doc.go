// Package generator translates protobuf files into XML Schema documents.
//
// # Overview
//
// A Run owns the state shared by every file generated during one invocation:
// the registry of imported type names and the table of imported namespaces.
// Each file gets its own schema tree and cursor.
//
// Lines are interpreted in a single forward pass. An import line is scanned
// (and, with GenerateImports, generated) before the next line is read, so a
// type is only qualified with its import's prefix when the import appears
// before the first use of the type.
//
// # Line interpretation
//
//	package a.b       root declares xmlns:tns="http://b.a"
//	import "x.proto"  scan x.proto, append <xs:import schemaLocation="x.xsd"/>
//	message M         new <xs:complexType name="M">, cursor moves onto it
//	extend B          <xs:complexContent><xs:extension base="tns:B">, cursor on extension
//	required T f      <xs:element minOccurs="1" maxOccurs="1"> in the cursor's sequence
//	optional T f      minOccurs="0" maxOccurs="1"
//	repeated T f      minOccurs="0" maxOccurs="unbounded"
//	}                 ignored
//
// required fields directly below an extension are dropped.
//
// # Usage
//
//	resolver, _ := source.NewFileResolver("./proto2xsd", 0)
//	run := generator.NewRun(generator.Config{
//		Options: generator.Options{IgnoreMissingImports: true},
//	}, resolver, emitter.New(emitter.Config{}, log), log)
//
//	result, err := run.Generate(ctx, "siti.person.proto")
//
// # Related Packages
//
//   - pkg/protoline: line classification
//   - pkg/typemap: field type mapping
//   - pkg/namespace: namespace URIs and prefixes
//   - pkg/emitter: serialization
package generator
