package main

import (
	"os"

	"github.com/zimplexing/git-smart-checktout/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
