package main

import (
	"fmt"

	"github.com/dhamidi/pyqual/format"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file> <line>",
		Short: "Print the import statement for the element at a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := elementAt(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.ImportStatement(el.Element))
			return nil
		},
	}
}
