package main

import (
	"os"

	"github.com/PhilipKram/rtab/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	rootCmd := cmd.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
