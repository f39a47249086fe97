// Package main is the entry point for the spindle command.
package main

import (
	"os"

	"github.com/0xalexb/spindle/cmd/spindle/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
