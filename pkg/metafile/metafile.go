// SPDX-License-Identifier: MPL-2.0

package metafile

// FileName is the conventional name of the metadata file.
const FileName = "metadata.go"

// TargetFields lists the recognized constant names, in declaration order.
// Extract collects only assignments to these names, and the diagnostic
// completeness check requires each of them to appear as a label in the
// PrintInfo output.
var TargetFields = []string{
	"Name",
	"Title",
	"Version",
	"Homepage",
	"Author",
	"AuthorEmail",
	"ShellCommand",
}

// Metadata holds the scalar constants extracted from the metadata file.
// Field names mirror the constant names in the file; all seven are required.
type Metadata struct {
	Name         string `json:"Name"`
	Title        string `json:"Title"`
	Version      string `json:"Version"`
	Homepage     string `json:"Homepage"`
	Author       string `json:"Author"`
	AuthorEmail  string `json:"AuthorEmail"`
	ShellCommand string `json:"ShellCommand"`
}

// isTargetField reports whether name is one of the recognized constants.
func isTargetField(name string) bool {
	for _, f := range TargetFields {
		if f == name {
			return true
		}
	}
	return false
}
