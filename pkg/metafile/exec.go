// SPDX-License-Identifier: MPL-2.0

package metafile

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Module is the runtime namespace of an executed metadata file. It exposes
// the diagnostic callable and captures everything the interpreted code
// writes to standard output.
type Module struct {
	// Path is the file the module was executed from.
	Path string
	// Package is the package name declared by the file.
	Package string

	interp    *interp.Interpreter
	stdout    *bytes.Buffer
	printInfo func()
}

// Exec interprets the metadata file at path in-process and returns its
// module namespace. The file must declare a package clause and export a
// zero-argument PrintInfo function.
//
// Stdout of the interpreted code is redirected into the returned Module so
// the diagnostic output can be inspected after invoking PrintInfo.
func Exec(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file at %s: %w", path, err)
	}

	pkg, err := packageClause(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	stdout := &bytes.Buffer{}
	i := interp.New(interp.Options{Stdout: stdout, Stderr: stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load interpreter symbols: %w", err)
	}

	if _, err := i.Eval(string(data)); err != nil {
		return nil, fmt.Errorf("failed to execute metadata file %s: %w", path, err)
	}

	m := &Module{
		Path:    path,
		Package: pkg,
		interp:  i,
		stdout:  stdout,
	}

	v, err := m.Lookup("PrintInfo")
	if err != nil {
		return nil, fmt.Errorf("%s: %s.PrintInfo not found: %w", path, pkg, err)
	}

	fn, ok := v.Interface().(func())
	if !ok {
		return nil, fmt.Errorf("%s: %s.PrintInfo is not a func()", path, pkg)
	}
	m.printInfo = fn

	return m, nil
}

// Lookup resolves an exported name in the module namespace.
func (m *Module) Lookup(name string) (reflect.Value, error) {
	return m.interp.Eval(m.Package + "." + name)
}

// PrintInfo invokes the diagnostic callable. Its output accumulates in the
// module's captured stdout.
func (m *Module) PrintInfo() {
	m.printInfo()
}

// Output returns everything the interpreted code has written to stdout (and
// stderr) so far.
func (m *Module) Output() string {
	return m.stdout.String()
}

// packageClause extracts the package name from Go source text.
func packageClause(src string) (string, error) {
	for _, line := range strings.Split(src, "\n") {
		stripped := strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(stripped, "package "); ok {
			return strings.TrimSpace(name), nil
		}
	}
	return "", fmt.Errorf("no package clause found")
}
