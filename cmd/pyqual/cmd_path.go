package main

import (
	"fmt"

	"github.com/dhamidi/pyqual/format"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <file> <line>",
		Short: "Print the qualified path of the element at a line",
		Long: `Print the dotted qualified path (module.Class.method) of the class,
function or top-level constant defined on the given 1-based line.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := elementAt(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.QualifiedPath(el.Element))
			return nil
		},
	}
}
