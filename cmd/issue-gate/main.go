// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

// Package main is the entry point for the issue-gate CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/similigh/issue-gate/cmd/issue-gate/commands"
)

func main() {
	// A .env file is optional; it only helps local runs.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		commands.ReportError(os.Stdout, os.Stderr, err)
		os.Exit(1)
	}
}
