package main

import (
	"os"

	"github.com/ostnam/linus/cmd/linus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
