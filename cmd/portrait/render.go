// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"portrait-cli/internal/check"
)

// renderReport formats a check report for terminal display.
func renderReport(r *check.Report) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("portrait check") + "\n")
	b.WriteString(SubtitleStyle.Render("manifest: ") + FieldStyle.Render(r.ManifestPath) + "\n")
	b.WriteString(SubtitleStyle.Render("metadata: ") + FieldStyle.Render(r.MetadataPath) + "\n\n")

	for _, f := range r.Fields {
		if f.OK {
			fmt.Fprintf(&b, "  %s %-13s %s\n",
				SuccessStyle.Render("✓"), f.Field, SubtitleStyle.Render(f.Got))
			continue
		}
		fmt.Fprintf(&b, "  %s %-13s manifest declares %s, metadata declares %s\n",
			ErrorStyle.Render("✗"), f.Field,
			FieldStyle.Render(f.Want), ErrorStyle.Render(f.Got))
	}

	if len(r.MissingLabels) > 0 {
		b.WriteString("\n" + ErrorStyle.Render("✗ diagnostic incomplete") +
			" PrintInfo output is missing: " + strings.Join(r.MissingLabels, ", ") + "\n")
	}

	b.WriteString("\n")
	switch {
	case r.OK():
		b.WriteString(SuccessStyle.Render("All metadata sources agree.") + "\n")
	case len(r.Mismatches()) > 0:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("%d field(s) out of sync.", len(r.Mismatches()))) + "\n")
	default:
		b.WriteString(ErrorStyle.Render("Diagnostic output incomplete.") + "\n")
	}

	return b.String()
}
