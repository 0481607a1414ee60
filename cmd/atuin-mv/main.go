// Package main is the entry point for the atuin-mv CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/shelltools/internal/histcli"
)

func main() {
	if err := histcli.Execute(); err != nil {
		os.Exit(1)
	}
}
