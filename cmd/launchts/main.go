package main

import (
	"os"

	"github.com/launchts/launchts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
