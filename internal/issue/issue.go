// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	ManifestInvalidId
	MetadataFileNotFoundId
	NoMetadataAssignmentsId
	MetadataExecFailedId
	FieldMismatchId
	ConfigLoadFailedId
	ServeStartFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown alongside the message
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No manifest found!

We looked for a project manifest but could not find one.

## Search order:
1. Path passed via --manifest
2. manifest_path from your config file
3. project.toml in the current directory

## Things you can try:
- Run portrait from the project root:
~~~
$ cd /path/to/your/project
$ portrait check
~~~

- Or point portrait at the manifest explicitly:
~~~
$ portrait check --manifest path/to/project.toml
~~~

## Example manifest structure:
~~~toml
[project]
name = "myproject"
version = "1.0.0"
description = "What the project does"

[project.urls]
homepage = "https://example.com/myproject"

[[project.authors]]
name = "Ada Doe"
email = "ada@example.com"

[project.scripts]
myproject = "myproject-cli/cmd/myproject.Execute"

[tool.portrait.build]
packages = ["internal/metadata"]
~~~`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Failed to parse the manifest!

Your manifest contains invalid TOML or does not match the expected schema.

## Common issues:
- Invalid TOML syntax (unbalanced quotes, brackets, etc.)
- Missing required fields (project.name, project.version, project.description)
- Wrong value types (e.g. a string where a table is expected)

## Things you can try:
- Check the error message above for the offending field path
- Run with verbose mode for more details:
~~~
$ portrait --verbose check
~~~`,
	}

	metadataFileNotFoundIssue = &Issue{
		id: MetadataFileNotFoundId,
		mdMsg: `
# Unable to locate the metadata file!

Every package directory declared in the manifest was probed for a
metadata.go file, and the conventional fallback path was tried too, but no
candidate exists.

## Search locations (in order):
1. <package>/metadata.go for each entry in tool.portrait.build.packages
2. internal/<project-name-with-underscores>/metadata.go

## Things you can try:
- Declare the directory that holds your metadata file:
~~~toml
[tool.portrait.build]
packages = ["internal/metadata"]
~~~

- Or create the file at the fallback location`,
	}

	noMetadataAssignmentsIssue = &Issue{
		id: NoMetadataAssignmentsId,
		mdMsg: `
# No metadata assignments found!

The metadata file exists but contains none of the recognized constant
assignments.

## Recognized constants:
Name, Title, Version, Homepage, Author, AuthorEmail, ShellCommand

## Example metadata file:
~~~go
package metadata

const (
	Name    = "myproject"
	Title   = "What the project does"
	Version = "1.0.0"
)
~~~`,
	}

	metadataExecFailedIssue = &Issue{
		id: MetadataExecFailedId,
		mdMsg: `
# Failed to execute the metadata file!

The metadata file could not be interpreted, or it does not export the
PrintInfo diagnostic.

## Requirements:
- The file must be a self-contained Go source file with a package clause
- It must export a zero-argument PrintInfo function
- PrintInfo must print every metadata field label

## Things you can try:
- Compile the file on its own to surface syntax errors
- Check that PrintInfo has no parameters and no return values`,
	}

	fieldMismatchIssue = &Issue{
		id: FieldMismatchId,
		mdMsg: `
# Metadata out of sync!

One or more metadata constants disagree with the manifest. The two sources
must stay textually identical: the manifest is canonical, the metadata file
mirrors it.

## Field correspondence:
- Name ↔ project.name
- Title ↔ project.description
- Version ↔ project.version
- Homepage ↔ project.urls.homepage
- Author / AuthorEmail ↔ first [[project.authors]] entry
- ShellCommand ↔ any key of [project.scripts]

## Things you can try:
- Update the metadata file to match the manifest
- Re-run the check:
~~~
$ portrait check
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the portrait configuration file.

## Configuration file locations:
- Linux: ~/.config/portrait/config.cue
- macOS: ~/Library/Application Support/portrait/config.cue
- Windows: %APPDATA%\portrait\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/portrait/config.cue
~~~

## Example configuration:
~~~cue
manifest_path: "project.toml"

ui: {
	color_scheme: "auto"
	verbose:      false
}
~~~`,
	}

	serveStartFailedIssue = &Issue{
		id: ServeStartFailedId,
		mdMsg: `
# Failed to start the report server!

The SSH report server could not bind or start.

## Common causes:
- The address is already in use
- The port requires elevated permissions (ports below 1024)

## Things you can try:
- Pick a different port:
~~~
$ portrait serve --port 2222
~~~

- Check what is bound to the address with ss/lsof`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():      manifestNotFoundIssue,
		manifestInvalidIssue.Id():       manifestInvalidIssue,
		metadataFileNotFoundIssue.Id():  metadataFileNotFoundIssue,
		noMetadataAssignmentsIssue.Id(): noMetadataAssignmentsIssue,
		metadataExecFailedIssue.Id():    metadataExecFailedIssue,
		fieldMismatchIssue.Id():         fieldMismatchIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		serveStartFailedIssue.Id():      serveStartFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
