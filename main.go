package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhabedank/recipe-gpt/cmd"
	"github.com/dhabedank/recipe-gpt/internal/version"
)

var appVersion = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "recipe-gpt",
		Short:   "Generate, save and browse recipes with an LLM",
		Version: appVersion,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if c.Name() != "setup" && version.IsFirstRun() {
				version.PrintFirstRunNotice(c.ErrOrStderr())
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cmd.GenerateCmd,
		cmd.BookCmd,
		cmd.ServeCmd,
		cmd.ListCmd,
		cmd.SetupCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
