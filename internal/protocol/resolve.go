// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protocol

import (
	"fmt"
	"sort"
	"strings"
)

// Index maps lowercased domain names to their models. Selection input is
// matched case-insensitively; the canonical schema name is always used for
// output.
type Index map[string]*Domain

// NewIndex builds a lookup index over the parsed domain set.
func NewIndex(domains []*Domain) Index {
	idx := make(Index, len(domains))
	for _, d := range domains {
		idx[strings.ToLower(d.Name)] = d
	}
	return idx
}

// Lookup returns the domain for a name, matched case-insensitively.
func (idx Index) Lookup(name string) (*Domain, bool) {
	d, ok := idx[strings.ToLower(name)]
	return d, ok
}

// RequiredDomains computes the set of domains needed to generate code for the
// requested roots plus the always-included mandatory set. Starting from
// roots ∪ mandatory it repeatedly adds every domain referenced by a member of
// the working set until no new domain appears.
//
// The descriptor's self-declared dependency lists are ignored on purpose:
// they are known to be an incomplete subset of what the generated modules
// need to import.
//
// It fails with ErrUnknownDomainSelected if any requested name does not exist
// in the parsed domain set. The result is sorted by canonical domain name and
// always contains roots ∪ mandatory.
func RequiredDomains(roots, mandatory []string, domains []*Domain) ([]*Domain, error) {
	idx := NewIndex(domains)

	var queue []*Domain
	seen := make(map[string]struct{})
	enqueue := func(d *Domain) {
		if _, ok := seen[d.Name]; ok {
			return
		}
		seen[d.Name] = struct{}{}
		queue = append(queue, d)
	}

	for _, name := range roots {
		d, ok := idx.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDomainSelected, name)
		}
		enqueue(d)
	}
	for _, name := range mandatory {
		d, ok := idx.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDomainSelected, name)
		}
		enqueue(d)
	}

	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		for _, ref := range d.References() {
			dep, ok := idx.Lookup(ref)
			if !ok {
				return nil, fmt.Errorf("%w: domain %s references unknown domain %s",
					ErrUnresolvedReference, d.Name, ref)
			}
			enqueue(dep)
		}
	}

	required := make([]*Domain, 0, len(seen))
	for name := range seen {
		required = append(required, idx[strings.ToLower(name)])
	}
	sort.Slice(required, func(i, j int) bool { return required[i].Name < required[j].Name })
	return required, nil
}

// VerifyReferences checks that every reference used by the given domains
// resolves to a type declared within the same set. A failure here means the
// closure computation is broken, so generation must abort rather than emit
// dangling type names.
func VerifyReferences(domains []*Domain) error {
	decls := make(map[string]map[string]struct{}, len(domains))
	for _, d := range domains {
		ids := make(map[string]struct{}, len(d.Types))
		for i := range d.Types {
			ids[d.Types[i].ID] = struct{}{}
		}
		decls[d.Name] = ids
	}

	for _, d := range domains {
		for ref := range d.refs() {
			domain, name := SplitRef(ref)
			if domain == "" {
				domain = d.Name
			}
			ids, ok := decls[domain]
			if !ok {
				return fmt.Errorf("%w: %s.%s (referenced from %s)", ErrUnresolvedReference, domain, name, d.Name)
			}
			if _, ok := ids[name]; !ok {
				return fmt.Errorf("%w: %s.%s (referenced from %s)", ErrUnresolvedReference, domain, name, d.Name)
			}
		}
	}
	return nil
}
