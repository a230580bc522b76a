// Command ventflow reads a valve network and prints the most pressure that
// can be released within the tick budget.
//
// Usage:
//
//	ventflow [options] [INPUT]
package main

import (
	"fmt"
	"os"
)

// main is the entrypoint for the ventflow command.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
