// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult contains the result of a successful parse or decode operation.
type ParseResult[T any] struct {
	// Value is the decoded Go struct.
	Value *T

	// Unified is the unified CUE value, available for advanced use cases
	// such as extracting additional metadata or performing custom validation.
	Unified cue.Value
}

// ParseAndDecode performs the 3-step CUE parsing flow for CUE-syntax input:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with the schema
//  3. Validate and decode to a Go struct
//
// Parameters:
//   - schema: the embedded CUE schema bytes (from //go:embed)
//   - data: the user-provided CUE file bytes
//   - schemaPath: the path to the root definition (e.g., "#Config")
//   - opts: optional configuration
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaRoot, err := compileSchema(ctx, schema, schemaPath)
	if err != nil {
		return nil, err
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	return unifyAndDecode[T](schemaRoot, userValue, filename, options)
}

// ParseAndDecodeString is a convenience wrapper that accepts the schema as a
// string, matching how //go:embed string variables are declared.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}

// DecodeMap validates already-parsed data (e.g., a TOML document decoded into
// a map) against an embedded CUE schema and decodes it into a Go struct.
//
// The data map is encoded into a CUE value, unified with the schema root at
// schemaPath, validated, and decoded. Validation errors carry the JSON path
// of the offending field.
func DecodeMap[T any](schema string, data map[string]any, schemaPath string, opts ...Option) (*T, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	ctx := cuecontext.New()

	schemaRoot, err := compileSchema(ctx, []byte(schema), schemaPath)
	if err != nil {
		return nil, err
	}

	dataValue := ctx.Encode(data)
	if dataValue.Err() != nil {
		return nil, FormatError(dataValue.Err(), filename)
	}

	result, err := unifyAndDecode[T](schemaRoot, dataValue, filename, options)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// compileSchema compiles the embedded schema and looks up its root definition.
// Schema errors are internal errors: the schema ships with the binary.
func compileSchema(ctx *cue.Context, schema []byte, schemaPath string) (cue.Value, error) {
	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	return schemaRoot, nil
}

// unifyAndDecode unifies input with the schema root, validates, and decodes.
func unifyAndDecode[T any](schemaRoot, input cue.Value, filename string, options parseOptions) (*ParseResult[T], error) {
	unified := schemaRoot.Unify(input)

	if options.concrete {
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			return nil, FormatError(err, filename)
		}
	} else {
		if err := unified.Validate(); err != nil {
			return nil, FormatError(err, filename)
		}
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}
