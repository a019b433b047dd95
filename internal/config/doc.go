// SPDX-License-Identifier: MPL-2.0

// Package config handles portrait's application configuration using Viper.
//
// Configuration lives in a CUE file (config.cue) under the platform config
// directory. The file is validated against the embedded #Config schema and
// merged into Viper on top of the defaults; a missing file is not an error.
package config
