// Package main is the entry point for the planner command line client.
package main

import (
	"fmt"
	"os"

	"github.com/rmaia/planner/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
