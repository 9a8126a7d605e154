package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dhamidi/pyqual/project"
	"github.com/spf13/cobra"
)

func newRootDirCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "root <file>",
		Short: "Print the project root used to derive module paths",
		Long: `Walk up from the file's directory to the first directory containing
one of the project markers and print it. Without a marker the file's own
directory is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}

			proj := project.Locate(path)
			out := cmd.OutOrStdout()
			if !verbose {
				fmt.Fprintln(out, proj.RootDir)
				return nil
			}

			marker := proj.Marker
			if marker == "" {
				marker = "none (fallback to file directory)"
			}
			fmt.Fprintf(out, "Root:    %s\n", proj.RootDir)
			fmt.Fprintf(out, "Marker:  %s\n", marker)
			fmt.Fprintf(out, "Module:  %s\n", project.ModulePath(proj.RootDir, path))
			fmt.Fprintf(out, "Markers: %s\n", strings.Join(project.Markers(), ", "))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the marker found and the derived module path")

	return cmd
}
