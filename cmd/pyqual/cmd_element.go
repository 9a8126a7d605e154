package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/pyqual/format"
	"github.com/spf13/cobra"
)

func newElementCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "element <file> <line>",
		Short: "Dump everything detected at a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := newEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			el, err := elementAt(args[0], args[1])
			if err != nil {
				return err
			}
			if err := encoder.Encode(el); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")

	return cmd
}

func newEncoder(name string, w io.Writer) (format.Encoder, error) {
	switch name {
	case "json":
		return format.NewJSONEncoder(w), nil
	case "line":
		return format.NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
