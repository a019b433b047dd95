// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for portrait.
//
// This package implements the Cobra command hierarchy for the portrait CLI:
// the root command, the check/info/manifest commands operating on a project's
// metadata sources, and the serve command exposing the consistency report
// over SSH.
package cmd
