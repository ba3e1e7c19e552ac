// Package main provides the dotenv-linter command.
package main

import (
	"os"

	"github.com/leapstack-labs/dotenv-linter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
