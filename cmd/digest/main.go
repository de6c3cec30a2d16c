package main

import (
	"os"

	"github.com/vaibhavrajebhosale/swing-digest/cmd/digest/commands"
)

// main is the entry point for the digest CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
