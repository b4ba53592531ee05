package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decision-trees",
		Short: "decision-trees is a tool to perform binary classification",
		Long:  `A tool to grow binary decision trees from your labeled data and use them to classify new examples`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), classifyCmd(config), gainCmd(config))
	return rootCmd
}
