package main

import (
	"os"

	"github.com/vishwaszadte/math-expression-generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
