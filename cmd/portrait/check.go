// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"portrait-cli/internal/check"
	"portrait-cli/internal/issue"
	"portrait-cli/pkg/metafile"

	"github.com/spf13/cobra"
)

// checkCmd cross-validates the manifest against the metadata file.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-validate the manifest against the metadata file",
	Long: `Check runs both halves of the consistency contract:

  1. Cross-source equality: each metadata constant must textually equal its
     manifest counterpart (Title corresponds to project.description; the
     ShellCommand must appear as a key of [project.scripts]).
  2. Diagnostic completeness: the metadata module's PrintInfo output must
     contain every field label.

Any mismatch or missing file is a hard failure with exit code 1.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	report, err := runFullCheck()
	if err != nil {
		return err
	}

	cmd.Print(renderReport(report))

	if !report.OK() {
		explain(issue.FieldMismatchId)
		return &ExitError{Code: 1, Err: errors.New("metadata out of sync with manifest")}
	}

	return nil
}

// runFullCheck executes the whole pipeline: load manifest, locate the
// metadata file, extract its constants, execute its diagnostic, and compare.
// It is shared between the check command and the serve report.
func runFullCheck() (*check.Report, error) {
	man, metaPath, err := resolveSources()
	if err != nil {
		return nil, err
	}

	meta, err := metafile.Extract(metaPath)
	if err != nil {
		if errors.Is(err, metafile.ErrNoAssignments) {
			explain(issue.NoMetadataAssignmentsId)
		}
		return nil, issue.WrapWithContext(err, "extract metadata constants", metaPath)
	}

	mod, err := metafile.Exec(metaPath)
	if err != nil {
		explain(issue.MetadataExecFailedId)
		return nil, issue.WrapWithContext(err, "execute metadata file", metaPath)
	}
	mod.PrintInfo()

	report, err := check.Run(man, meta)
	if err != nil {
		return nil, issue.WrapWithContext(err, "run consistency check", man.FilePath)
	}

	report.MetadataPath = metaPath
	report.MissingLabels = check.Diagnose(mod.Output())

	return report, nil
}
