// Command hxhead renders head manifests and generates favicon markup.
//
// Configuration is read, from highest to lowest priority, from flags,
// HXHEAD_* environment variables (HXHEAD_KEY, HXHEAD_LOG_LEVEL, ...) and an
// optional .hxhead.yaml in the working directory.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
