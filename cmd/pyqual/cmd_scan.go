package main

import (
	"fmt"

	"github.com/dhamidi/pyqual/python"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "List every class, function and constant in a Python file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := newEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			path, err := pythonFile(args[0])
			if err != nil {
				return err
			}
			lines, err := readLines(path)
			if err != nil {
				return err
			}
			if err := encoder.Encode(python.Outline(lines, path)...); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}
