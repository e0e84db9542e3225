package main

import (
	"os"

	"beammm/cmd/beammm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
