// Package cli implements the proto2xsd command-line interface.
//
// # Overview
//
// proto2xsd reads one protobuf file below the base directory and writes an
// XML Schema next to the configured output directory. Flags must precede
// the file name; unknown flags are ignored.
//
// # Usage
//
//	proto2xsd [flags] <file>
//
// Generate person.xsd and the schemas of its imports:
//
//	proto2xsd -g siti.person.proto
//
// Print the schema instead of writing it, tolerating missing imports:
//
//	proto2xsd --dry-run --ignore-missing-imports siti.person.proto
//
// Regenerate whenever a proto file changes:
//
//	proto2xsd -w -r --config=proto2xsd.yaml siti.person.proto
//
// # Flags
//
//	-g, --generate-imports        Generate a schema for every imported file
//	-i, --ignore-missing-imports  Continue when an import cannot be read
//	-r, --recursive-imports       Scan the imports of imported files
//	-d, --dry-run                 Print schemas to stdout
//	-w, --watch                   Regenerate on changes until interrupted
//	-h, --help                    Show usage
//	--config=<file>               Load settings from a YAML file
//
// # Exit Codes
//
// 0 on success and when usage is printed, 1 on any fatal error.
//
// # Related Packages
//
//   - pkg/config: Settings loaded before a run
//   - pkg/generator: Schema generation
//   - pkg/watch: Watch mode
package cli
