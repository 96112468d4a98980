package main

import (
	"os"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
