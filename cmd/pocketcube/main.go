// Pocket cube state-space explorer - CLI for the 2x2 corner-cube move algebra.
package main

import (
	"github.com/feldi/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
