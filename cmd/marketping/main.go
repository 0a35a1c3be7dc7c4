// Package main is the entry point for the marketping server.
package main

import (
	"os"

	"github.com/marketping/marketping/cmd/marketping/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
