// SPDX-License-Identifier: MPL-2.0

// Package sshserver exposes the portrait consistency report over SSH using
// the Wish library. Sessions are read-only: every connection receives the
// rendered report and is closed. The server binds to loopback by default and
// performs no authentication, matching the report's diagnostic nature.
package sshserver
