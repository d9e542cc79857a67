// Command amazons-cli plays Game of the Amazons from the terminal.
package main

import (
	"flag"

	"github.com/amazonsengine/amazons/internal/cli"
)

func main() {
	flag.Parse()
	cli.Run()
}
