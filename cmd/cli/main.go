package main

import (
	"fmt"
	"os"

	"github.com/jmakela/crossroads/cmd/cli/admin"
	"github.com/jmakela/crossroads/cmd/cli/catalog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// A missing .env file is fine, the environment may be configured elsewhere.
	_ = godotenv.Load()
	rootCmd.AddGroup(admin.Group)
	rootCmd.AddCommand(admin.Create)
	rootCmd.AddGroup(catalog.Group)
	rootCmd.AddCommand(catalog.Import, catalog.List)
}

var rootCmd = &cobra.Command{
	Use:  "crossroads-cli",
	Long: `Command line utilities for Crossroads https://github.com/jmakela/crossroads`,
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
