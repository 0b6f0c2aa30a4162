package main

import (
	"os"

	"github.com/highrascal9098/Interview-Prep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
