// Package main is the entry point for the z157 CLI tool.
package main

import (
	"os"

	"github.com/glennib/z157/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
