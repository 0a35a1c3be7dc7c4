// Package main is the entry point for the mpctl CLI.
package main

import (
	"github.com/marketping/marketping/cmd/mpctl/cmd"
)

func main() {
	cmd.Execute()
}
