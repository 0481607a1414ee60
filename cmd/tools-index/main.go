// Package main is the entry point for the tools-index CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/shelltools/internal/indexcli"
)

func main() {
	if err := indexcli.Execute(); err != nil {
		os.Exit(1)
	}
}
