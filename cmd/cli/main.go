// Package main is the entry point for the refine-calc CLI.
package main

import (
	"os"

	"refine-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
