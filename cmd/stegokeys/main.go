package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/hasbyte1/stegokeys/internal/cli"
)

func main() {
	// Wipe every locked buffer if the process is interrupted.
	memguard.CatchInterrupt()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		memguard.SafeExit(1)
	}
	memguard.SafeExit(0)
}
