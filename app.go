package main

import (
	"os"

	"github.com/BarthPaleologue/cloc-graph/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args))
}
