// Package main provides the CLI entry point for ordernums.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApplication()
	if err := app.execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describeError(err))
		os.Exit(1)
	}
}
