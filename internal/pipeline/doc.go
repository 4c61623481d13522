// Package pipeline runs one minspace conversion: read a sequence, extract
// its minimizer stream, write the binary file.
//
// Config is the only knob set; every entry point (CLI, tests) builds one
// and calls Run with an explicit logger. Nothing here touches flags or
// process state.
package pipeline
