// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitErrorMessage(t *testing.T) {
	e := &ExitError{Code: 1, Err: errors.New("metadata out of sync with manifest")}
	if got := e.Error(); got != "metadata out of sync with manifest" {
		t.Errorf("Error() = %q", got)
	}

	bare := &ExitError{Code: 3}
	if got := bare.Error(); got != "exit status 3" {
		t.Errorf("Error() = %q, want %q", got, "exit status 3")
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("wrap: %w", &ExitError{Code: 1, Err: sentinel})

	var exitErr *ExitError
	if !errors.As(wrapped, &exitErr) {
		t.Fatal("errors.As() failed to find *ExitError")
	}
	if exitErr.Code != 1 {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is() failed to reach the underlying cause")
	}
}
