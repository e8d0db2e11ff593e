package main

import (
	"os"

	"github.com/davidjspooner/ecsig/cmd/ecsig/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
