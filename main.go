// Command finecheck is the entry point for the finecheck CLI.
package main

import (
	"os"

	"github.com/abhisek/finecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
