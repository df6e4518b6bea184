// main is the entry point for the repopulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/kwangc/repopulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
