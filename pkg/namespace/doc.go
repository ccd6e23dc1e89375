// Package namespace derives XML namespaces and prefixes from protobuf names.
//
// A protobuf package path becomes a reversed-domain namespace URI:
//
//	namespace.FromPackage("siti.foo_bar")   // http://foo_bar.siti
//
// An imported file name becomes a short prefix used to qualify the types it
// declares:
//
//	namespace.AliasFromFilename("siti.foo_bar.proto", "siti.") // fb
//	namespace.AliasFromFilename("siti.common.proto", "siti.")  // com
//
// Aliases are not checked for uniqueness. Two imports may produce the same
// alias; the Table keeps the last URI registered for it.
package namespace
