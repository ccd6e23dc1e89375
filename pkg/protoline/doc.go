// Package protoline turns raw protobuf source lines into classified lines.
//
// # Overview
//
// proto2xsd does not tokenize protobuf. Every line is trimmed, stripped of
// statement terminators and split on single spaces; the first token decides
// the line's Kind. Blank lines, comments and option lines are dropped before
// classification and never reach the interpreter.
//
// # Usage
//
//	lines := protoline.Split(content)
//	for _, line := range lines {
//		switch line.Kind {
//		case protoline.KindMessage:
//			name, _ := line.Arg(1)
//			...
//		}
//	}
//
// # Related Packages
//
//   - pkg/generator: dispatches on Kind
//   - pkg/source: reads the lines handed to Split
package protoline
