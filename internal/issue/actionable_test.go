// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("file not found")

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load manifest"},
			want: "failed to load manifest",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load manifest", Resource: "project.toml"},
			want: "failed to load manifest: project.toml",
		},
		{
			name: "full context",
			err:  &ActionableError{Operation: "load manifest", Resource: "project.toml", Cause: cause},
			want: "failed to load manifest: project.toml: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("outer: %w", sentinel)

	err := NewErrorContext().
		WithOperation("run check").
		Wrap(wrapped).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() failed to find the sentinel through the chain")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As() failed to extract *ActionableError")
	}
	if ae.Operation != "run check" {
		t.Errorf("Operation = %q, want %q", ae.Operation, "run check")
	}
}

func TestErrorContextBuilder(t *testing.T) {
	ae := NewErrorContext().
		WithOperation("locate metadata file").
		WithResource("internal/metadata").
		WithSuggestion("Declare the package in the manifest").
		WithSuggestion("Create the file at the fallback location").
		Build()

	if ae == nil {
		t.Fatal("Build() = nil with an operation set")
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(ae.Suggestions))
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("project.toml").Build(); got != nil {
		t.Errorf("Build() = %v without an operation, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v without an operation, want nil", got)
	}
}

func TestFormatSuggestionsAndChain(t *testing.T) {
	inner := errors.New("inner")
	middle := fmt.Errorf("middle: %w", inner)

	ae := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the configuration syntax").
		Wrap(middle).
		Build()

	plain := ae.Format(false)
	if !strings.Contains(plain, "• Check the configuration syntax") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) includes the error chain:\n%s", plain)
	}

	verbose := ae.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing the error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "1. middle: inner") || !strings.Contains(verbose, "2. inner") {
		t.Errorf("Format(true) chain incomplete:\n%s", verbose)
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapWithOperation(nil, "op") != nil {
		t.Error("WrapWithOperation(nil) != nil")
	}
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) != nil")
	}

	cause := errors.New("cause")
	ae := WrapWithContext(cause, "run check", "project.toml")
	if ae.Operation != "run check" || ae.Resource != "project.toml" {
		t.Errorf("WrapWithContext() = %+v, want operation and resource set", ae)
	}
	if !errors.Is(ae, cause) {
		t.Error("wrapped error lost its cause")
	}
}
