package main

import (
	"os"

	"milsabores/cmd/milsabores/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
