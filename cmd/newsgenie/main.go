package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; real config comes from file + NEWSGENIE_* env.
	_ = godotenv.Load()

	root := &cobra.Command{Use: "newsgenie"}
	root.AddCommand(serveCMD(), chatCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
