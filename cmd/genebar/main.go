package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/genebar/internal/cli"
)

const (
	cmdName = "genebar"

	shortDesc = "Track gene expression values and chart them."
	longDesc  = `Genebar keeps a list of genes and their expression values for the
current session and draws them as a horizontal bar chart, largest first.

Use "genebar run" to add and remove quantities interactively while the chart
animates, or "genebar render" to apply a list of operations and write the
resulting chart as SVG or text.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
