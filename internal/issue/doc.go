// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for portrait.
//
// ActionableError carries structured context (operation, resource,
// suggestions, cause) for errors surfaced on the CLI. The Issue catalog
// holds the enumerated failure explanations rendered as markdown for the
// situations a user can actually fix: a missing manifest, a metadata file
// that cannot be located, an empty metadata file, and so on.
package issue
