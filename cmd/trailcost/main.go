// Package main is the entry point for trailcost CLI.
package main

import (
	"os"

	"github.com/LdDl/trailcost/cmd/trailcost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
