// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

// Options configures an assembly run.
type Options struct {
	// Package is the Python package path used for cross-module imports,
	// e.g. "myapp.cdp.devtools".
	Package string
	// Ref is the protocol version label embedded in every provenance header.
	Ref string
}

// Artifacts is the complete output set of one generation run, keyed by file
// name. It is a plain value: assembly performs no I/O and the caller decides
// where (and whether) the files land.
type Artifacts struct {
	files map[string][]byte
}

// Names returns the artifact file names in sorted order.
func (a *Artifacts) Names() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the content of one artifact, or nil if absent.
func (a *Artifacts) Get(name string) []byte {
	return a.files[name]
}

// Len returns the number of artifacts.
func (a *Artifacts) Len() int {
	return len(a.files)
}

// Assemble renders the given required domains into the full artifact set:
// one module per domain, the shared util module, and the __init__ aggregator
// importing every generated module in sorted order. The input set must
// already be closed under references (see protocol.RequiredDomains); nothing
// is rendered if any entity fails to emit.
func Assemble(domains []*protocol.Domain, opts Options) (*Artifacts, error) {
	files := make(map[string][]byte, len(domains)+2)

	modules := make([]string, 0, len(domains)+1)
	for _, d := range domains {
		mod := ModuleName(d.Name)
		content, err := emitDomain(d, opts.Package, opts.Ref)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
		files[mod+".py"] = content
		modules = append(modules, mod)
	}

	var util bytes.Buffer
	if err := tmpl.ExecuteTemplate(&util, "util.py.tmpl", struct{ Ref string }{opts.Ref}); err != nil {
		return nil, fmt.Errorf("failed to execute util template: %w", err)
	}
	files["util.py"] = util.Bytes()

	modules = append(modules, "util")
	sort.Strings(modules)

	var init bytes.Buffer
	err := tmpl.ExecuteTemplate(&init, "init.py.tmpl", struct {
		Ref     string
		Package string
		Modules []string
	}{opts.Ref, opts.Package, modules})
	if err != nil {
		return nil, fmt.Errorf("failed to execute init template: %w", err)
	}
	files["__init__.py"] = init.Bytes()

	return &Artifacts{files: files}, nil
}
