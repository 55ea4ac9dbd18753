package main

import (
	"os"

	"github.com/aslanbek/kazlearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
