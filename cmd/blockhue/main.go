// blockhue - colour and palette tools for block-based games
//
// blockhue measures block texture colours, builds themed, biome and
// colour-theory palettes from a block catalog and exports them for
// image editors and web pages.
package main

import (
	"os"

	"github.com/jmylchreest/blockhue/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
