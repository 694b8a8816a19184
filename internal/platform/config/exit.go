package config

import (
	"fmt"
	"io"
	"os"
)

// Replaced in tests.
var (
	stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// Exitf prints one formatted line to stderr and terminates with status 1.
// Commands call it as Exitf("Error: %v", err).
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(1)
}
