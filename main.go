// Amazons is the repository's default entry point: a thin wrapper around
// internal/cli's command loop, the same one cmd/amazons-cli runs, so
// `go run .` plays the same game as the installed amazons-cli binary.
package main

import (
	"flag"

	"github.com/amazonsengine/amazons/internal/cli"
)

func main() {
	flag.Parse()
	cli.Run()
}
