package main

import (
	"os"

	"github.com/sonarci/sonarci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
