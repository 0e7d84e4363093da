package main

import (
	"os"

	"github.com/gabrielsuarezz/Voxtant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
