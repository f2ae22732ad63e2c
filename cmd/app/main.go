package main

import (
	"os"

	"netanyaRelay/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
