package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mykeomos/Newton-law-tutor/cmd"
)

func main() {
	// A .env file is optional and never overrides the shell environment.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
