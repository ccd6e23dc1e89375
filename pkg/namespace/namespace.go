package namespace

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// URIScheme prefixes every namespace derived from a package
	URIScheme = "http://"

	// SourceToken is the schema-language token rewritten in derived names
	SourceToken = "proto"
	// TargetToken replaces SourceToken
	TargetToken = "xsd"

	// SourceExtension is the extension of protobuf files
	SourceExtension = ".proto"

	// DefaultStripPrefix is removed from import file names before deriving an alias
	DefaultStripPrefix = "siti."

	// XSDNamespace is the XML Schema namespace bound to XSDPrefix
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
	// XSDPrefix qualifies XML Schema tags and primitive types
	XSDPrefix = "xs"
	// LocalPrefix qualifies types declared in the document being generated
	LocalPrefix = "tns"
	// XMLNSPrefix starts namespace declaration attributes
	XMLNSPrefix = "xmlns"

	aliasLength = 3
)

// ErrAliasTooShort is returned when a file name cannot yield a three-letter alias
var ErrAliasTooShort = errors.New("file name too short for a namespace alias")

// RewriteToken replaces every protobuf token in s with the XML Schema token
func RewriteToken(s string) string {
	return strings.ReplaceAll(s, SourceToken, TargetToken)
}

// FromPackage computes the namespace URI of a dotted package path
func FromPackage(pkg string) string {
	segments := strings.Split(pkg, ".")
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return URIScheme + RewriteToken(strings.Join(segments, "."))
}

// AliasFromFilename derives a namespace alias from an imported file path.
//
// stripPrefix and the .proto extension are removed from the whole path,
// directories included. A name containing underscores yields the first letter
// of each segment, any other name its first three letters.
func AliasFromFilename(importPath, stripPrefix string) (string, error) {
	name := importPath
	if stripPrefix != "" {
		name = strings.ReplaceAll(name, stripPrefix, "")
	}
	name = strings.ReplaceAll(name, SourceExtension, "")

	if strings.Contains(name, "_") {
		var sb strings.Builder
		for _, segment := range strings.Split(name, "_") {
			if segment == "" {
				continue
			}
			sb.WriteRune([]rune(segment)[0])
		}
		if sb.Len() == 0 {
			return "", fmt.Errorf("%w: %q", ErrAliasTooShort, importPath)
		}
		return sb.String(), nil
	}

	runes := []rune(name)
	if len(runes) < aliasLength {
		return "", fmt.Errorf("%w: %q", ErrAliasTooShort, importPath)
	}
	return string(runes[:aliasLength]), nil
}

// Qualify prefixes a local name with an alias
func Qualify(alias, name string) string {
	if alias == "" {
		return name
	}
	return alias + ":" + name
}

// Declaration returns the attribute name declaring alias on an element
func Declaration(alias string) string {
	return XMLNSPrefix + ":" + alias
}
