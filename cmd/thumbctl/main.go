package main

import (
	"os"

	"github.com/Act-App/Act-Thumbhash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
