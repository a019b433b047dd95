// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"portrait-cli/pkg/manifest"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// manifestCmd shows the parsed manifest.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Show the parsed project manifest",
	Args:  cobra.NoArgs,
	RunE:  runManifest,
}

func runManifest(cmd *cobra.Command, _ []string) error {
	man, err := loadManifest()
	if err != nil {
		return err
	}

	cmd.Print(renderManifest(man))

	return nil
}

// renderManifest formats the manifest tables the checker consumes.
func renderManifest(man *manifest.Manifest) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("project manifest") + " " + SubtitleStyle.Render(man.FilePath) + "\n\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %-13s %s\n", SubtitleStyle.Render(label), value)
	}

	row("name", FieldStyle.Render(man.Project.Name))
	row("version", man.Project.Version)
	row("description", man.Project.Description)
	row("homepage", man.Project.URLs.Homepage)

	for i, a := range man.Project.Authors {
		row(fmt.Sprintf("author[%d]", i), fmt.Sprintf("%s <%s>", a.Name, a.Email))
	}

	scripts := maps.Keys(man.Project.Scripts)
	slices.Sort(scripts)
	for _, name := range scripts {
		row("script", FieldStyle.Render(name)+SubtitleStyle.Render(" -> "+man.Project.Scripts[name]))
	}

	if pkgs := man.Tool.Portrait.Build.Packages; len(pkgs) > 0 {
		row("packages", strings.Join(pkgs, ", "))
	}

	if len(man.Project.Classifiers) > 0 {
		b.WriteString("\n" + SubtitleStyle.Render("classifiers:") + "\n")
		for _, c := range man.Project.Classifiers {
			b.WriteString("  - " + c + "\n")
		}
	}

	return b.String()
}
