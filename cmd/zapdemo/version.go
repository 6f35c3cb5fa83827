package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "v0.1.1"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the zapdemo version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("zapdemo", Version)
	},
}
