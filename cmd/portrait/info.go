// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"portrait-cli/internal/issue"
	"portrait-cli/pkg/metafile"

	"github.com/spf13/cobra"
)

// infoCmd executes the metadata module and prints its diagnostic output.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Run the metadata module's PrintInfo diagnostic",
	Long: `Info executes the metadata file as a standalone unit, invokes its
zero-argument PrintInfo routine, and prints the captured output. This is the
raw diagnostic view; use 'portrait check' to validate the fields against the
manifest.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, _ []string) error {
	_, metaPath, err := resolveSources()
	if err != nil {
		return err
	}

	mod, err := metafile.Exec(metaPath)
	if err != nil {
		explain(issue.MetadataExecFailedId)
		return issue.WrapWithContext(err, "execute metadata file", metaPath)
	}

	mod.PrintInfo()
	cmd.Print(mod.Output())

	return nil
}
