// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetKnownIds(t *testing.T) {
	ids := []Id{
		ManifestNotFoundId,
		ManifestInvalidId,
		MetadataFileNotFoundId,
		NoMetadataAssignmentsId,
		MetadataExecFailedId,
		FieldMismatchId,
		ConfigLoadFailedId,
		ServeStartFailedId,
	}

	for _, id := range ids {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if i.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestGetUnknownId(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestValuesCoversCatalog(t *testing.T) {
	vals := Values()
	if len(vals) != 8 {
		t.Errorf("Values() returned %d issues, want 8", len(vals))
	}

	seen := map[Id]bool{}
	for _, i := range vals {
		if seen[i.Id()] {
			t.Errorf("duplicate issue id %d", i.Id())
		}
		seen[i.Id()] = true
	}
}

func TestRenderUsesRenderer(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return "rendered:" + in, nil
	}

	out, err := Get(FieldMismatchId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style path = %q, want %q", gotStyle, "dark")
	}
	if !strings.Contains(out, "Metadata out of sync") {
		t.Errorf("rendered output missing the issue text:\n%s", out)
	}
}

func TestLinkAccessorsCopy(t *testing.T) {
	i := &Issue{
		id:       Id(100),
		mdMsg:    "msg",
		docLinks: []HttpLink{"https://example.com/docs"},
	}

	links := i.DocLinks()
	links[0] = "mutated"
	if i.docLinks[0] != "https://example.com/docs" {
		t.Error("DocLinks() exposed the internal slice")
	}

	if got := i.ExtLinks(); len(got) != 0 {
		t.Errorf("ExtLinks() = %v, want empty", got)
	}
}
