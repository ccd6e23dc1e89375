// Package config loads proto2xsd settings.
//
// # Overview
//
// Settings come from built-in defaults, an optional YAML file and
// environment variables, in increasing order of precedence. A .env file in
// the working directory is loaded into the environment first; variables
// already set are not overridden.
//
// # Configuration
//
// YAML file:
//
//	base_dir: ./proto2xsd
//	output_dir: ./generated
//	alias_strip_prefix: "siti."
//	indent: 4
//	log_level: info
//	cache_size: 128
//
// Environment:
//
//	PROTO2XSD_BASE_DIR="./proto2xsd"
//	PROTO2XSD_OUTPUT_DIR="."
//	PROTO2XSD_ALIAS_STRIP_PREFIX="siti."
//	PROTO2XSD_INDENT="4"
//	PROTO2XSD_LOG_LEVEL="info"  # debug, info, warn, error
//	PROTO2XSD_CACHE_SIZE="128"
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("proto2xsd.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Reading protos from %s\n", cfg.BaseDir)
package config
