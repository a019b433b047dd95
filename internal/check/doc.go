// SPDX-License-Identifier: MPL-2.0

// Package check cross-validates the project manifest against the extracted
// metadata record and verifies the completeness of the PrintInfo diagnostic.
//
// Two independently runnable checks exist, mirroring the two halves of the
// consistency contract:
//
//   - Run compares the seven metadata scalars against their manifest
//     counterparts (title corresponds to description; shell_command is
//     checked for membership in the scripts table). Precondition failures
//     (no authors, empty homepage) abort before any field comparison.
//   - Diagnose asserts that every recognized field label appears verbatim in
//     the captured PrintInfo output.
//
// Every field comparison is recorded independently so a single divergence
// trips exactly one result.
package check
