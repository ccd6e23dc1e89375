package cli

import (
	"strings"

	"github.com/platinummonkey/proto2xsd/pkg/generator"
)

// Flag describes one command-line switch
type Flag struct {
	Short       string
	Long        string
	Description string
	// Value names the argument of a --long=value flag
	Value string
}

// Invocation is the parsed command line
type Invocation struct {
	Options    generator.Options
	Watch      bool
	Help       bool
	ConfigPath string
	// File is the input file; empty when none was given
	File string
	// Ignored holds unknown flags and arguments after the file
	Ignored []string
}

const configFlag = "--config"

// ParseArgs parses flags up to the first argument not starting with "-".
// That argument is the input file and anything after it is ignored.
func ParseArgs(args []string) Invocation {
	var inv Invocation

	index := 0
	for index < len(args) && strings.HasPrefix(args[index], "-") {
		arg := args[index]
		index++

		switch arg {
		case "-g", "--generate-imports":
			inv.Options.GenerateImports = true
		case "-i", "--ignore-missing-imports":
			inv.Options.IgnoreMissingImports = true
		case "-r", "--recursive-imports":
			inv.Options.RecursiveImports = true
		case "-d", "--dry-run":
			inv.Options.DryRun = true
		case "-w", "--watch":
			inv.Watch = true
		case "-h", "--help":
			inv.Help = true
		default:
			if value, ok := strings.CutPrefix(arg, configFlag+"="); ok {
				inv.ConfigPath = value
				continue
			}
			inv.Ignored = append(inv.Ignored, arg)
		}
	}

	if index < len(args) {
		inv.File = args[index]
		inv.Ignored = append(inv.Ignored, args[index+1:]...)
	}

	return inv
}
