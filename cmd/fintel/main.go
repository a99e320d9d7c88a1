package main

import (
	"os"

	"github.com/wonny/fintel/backend/cmd/fintel/commands"
)

// main is the entry point for the Fintel CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/fintel [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
