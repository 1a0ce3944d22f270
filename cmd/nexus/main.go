package main

import (
	"os"

	"github.com/krisvanrens/nexus-lang/cmd/nexus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
