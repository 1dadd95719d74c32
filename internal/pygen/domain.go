// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pygen

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/mutebessim/cdpgen/internal/protocol"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "templates/*.tmpl"))

type moduleHeader struct {
	Ref          string
	Domain       string
	Experimental bool
	Imports      []string
}

// moduleImports computes the import lines for a domain module from the same
// reference scan the dependency closure uses, restricted to this domain,
// plus the shared util module. The descriptor's declared dependency list is
// not consulted.
func moduleImports(d *protocol.Domain, pkg string) []string {
	deps := make([]string, 0, len(d.References()))
	for _, name := range d.References() {
		deps = append(deps, ModuleName(name))
	}
	sort.Strings(deps)

	imports := make([]string, 0, len(deps)+1)
	for _, mod := range deps {
		imports = append(imports, fmt.Sprintf("import %s.%s as %s", pkg, mod, mod))
	}
	imports = append(imports, fmt.Sprintf("from %s.util import T_JSON_DICT, event_class", pkg))
	return imports
}

// emitDomain renders one complete domain module: provenance header, imports,
// then every type, command, and event in schema order.
func emitDomain(d *protocol.Domain, pkg, ref string) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "module.py.tmpl", moduleHeader{
		Ref:          ref,
		Domain:       d.Name,
		Experimental: d.Experimental,
		Imports:      moduleImports(d, pkg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute module template: %w", err)
	}

	blocks := make([]string, 0, len(d.Types)+len(d.Commands)+len(d.Events))
	for i := range d.Types {
		block, err := emitTypeDecl(&d.Types[i])
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	for i := range d.Commands {
		blocks = append(blocks, emitCommand(&d.Commands[i]))
	}
	for i := range d.Events {
		blocks = append(blocks, emitEvent(&d.Events[i]))
	}

	buf.WriteString(strings.Join(blocks, "\n\n\n"))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
