package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pyqual",
		Short:        "Qualified paths and import statements for Python source positions",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newElementCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newRootDirCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
