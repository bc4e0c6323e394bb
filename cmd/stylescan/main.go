package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/example/stylescan/internal/cli"
)

func main() {
	// Environment overrides may live in a local .env during development.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
