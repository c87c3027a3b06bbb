package cli

import (
	"fmt"

	"github.com/futureCreator/docuflux/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docuflux",
	Short: "LLM-powered repo documentation generator",
	Long:  `docuflux collects source files from paths, globs, or GitHub URLs and turns them into documentation via an LLM gateway, published to Confluence or saved as structured JSON.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docuflux %s\n", version.Version)
	},
}
