package main

import (
	"os"

	"github.com/brochure-dev/brochure/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
