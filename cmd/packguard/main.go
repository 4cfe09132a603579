package main

import (
	"os"

	"github.com/knowmarket/packguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
