// Package main is the entry point for the finlens CLI tool.
package main

import (
	"github.com/hargabyte/finlens/internal/cmd"
)

func main() {
	cmd.Execute()
}
