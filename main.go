package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"vidpub/cmd"
)

func main() {
	// .env is optional; deployments usually set variables directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
