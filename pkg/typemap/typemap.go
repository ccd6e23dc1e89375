// Package typemap maps protobuf field types to XML Schema types.
package typemap

import (
	"github.com/platinummonkey/proto2xsd/pkg/namespace"
)

var primitives = map[string]string{
	"string": "string",
	"bool":   "boolean",
	"int32":  "integer",
	"int64":  "integer",
	"bytes":  "base64Binary",
	"double": "decimal",
}

// Registry maps message names declared in imported files to the alias of
// their namespace
type Registry struct {
	aliases map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{aliases: make(map[string]string)}
}

// Register records that name is declared in the namespace bound to alias
func (r *Registry) Register(name, alias string) {
	r.aliases[name] = alias
}

// Lookup returns the alias registered for name
func (r *Registry) Lookup(name string) (string, bool) {
	alias, ok := r.aliases[name]
	return alias, ok
}

// Len returns the number of registered names
func (r *Registry) Len() int {
	return len(r.aliases)
}

// IsPrimitive reports whether name is a protobuf scalar with a fixed XML Schema type
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// Map returns the qualified XML Schema type for a protobuf type name.
//
// Scalars map to xs: types. Other names are qualified with the alias found
// in the registry, or with the local tns alias when the name is unknown.
// A nil registry behaves as an empty one.
func Map(name string, registry *Registry) string {
	if IsPrimitive(name) {
		return namespace.Qualify(namespace.XSDPrefix, primitives[name])
	}
	if registry != nil {
		if alias, ok := registry.Lookup(name); ok {
			return namespace.Qualify(alias, name)
		}
	}
	return namespace.Qualify(namespace.LocalPrefix, name)
}
