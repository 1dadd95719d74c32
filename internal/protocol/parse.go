// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protocol

import (
	"encoding/json"
	"fmt"
)

// Raw descriptor shapes. Field names follow the CDP JSON exactly; the typed
// model in protocol.go is built from these and never exposes them.

type rawDescriptor struct {
	Version *rawVersion `json:"version"`
	Domains []rawDomain `json:"domains"`
}

type rawVersion struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

type rawDomain struct {
	Domain       string       `json:"domain"`
	Description  string       `json:"description"`
	Experimental bool         `json:"experimental"`
	Dependencies []string     `json:"dependencies"`
	Types        []rawType    `json:"types"`
	Commands     []rawCommand `json:"commands"`
	Events       []rawEvent   `json:"events"`
}

type rawType struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Items       *rawItems     `json:"items"`
	Enum        []string      `json:"enum"`
	Properties  []rawProperty `json:"properties"`
}

type rawItems struct {
	Type string `json:"type"`
	Ref  string `json:"$ref"`
}

type rawProperty struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Ref          string    `json:"$ref"`
	Items        *rawItems `json:"items"`
	Optional     bool      `json:"optional"`
	Experimental bool      `json:"experimental"`
	Deprecated   bool      `json:"deprecated"`
}

type rawCommand struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Experimental bool          `json:"experimental"`
	Deprecated   bool          `json:"deprecated"`
	Parameters   []rawProperty `json:"parameters"`
	Returns      []rawProperty `json:"returns"`
}

type rawEvent struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Experimental bool          `json:"experimental"`
	Deprecated   bool          `json:"deprecated"`
	Parameters   []rawProperty `json:"parameters"`
}

// Parse decodes a single protocol descriptor document into domain models.
// It fails with ErrSchemaVersionMismatch if the descriptor does not declare
// the version this generator understands, and with ErrMalformedSchemaRecord
// if a required field is missing. No partial model is returned on failure.
func Parse(data []byte) ([]*Domain, error) {
	var raw rawDescriptor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchemaRecord, err)
	}
	if raw.Version == nil {
		return nil, fmt.Errorf("%w: missing version", ErrMalformedSchemaRecord)
	}
	if raw.Version.Major != VersionMajor || raw.Version.Minor != VersionMinor {
		return nil, fmt.Errorf("%w: got %s.%s, expected %s.%s",
			ErrSchemaVersionMismatch, raw.Version.Major, raw.Version.Minor, VersionMajor, VersionMinor)
	}

	domains := make([]*Domain, 0, len(raw.Domains))
	for i, rd := range raw.Domains {
		d, err := parseDomain(rd)
		if err != nil {
			return nil, fmt.Errorf("domain %d: %w", i, err)
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// ParseAll decodes several descriptor documents (the protocol ships as a
// browser part and a js part) and concatenates their domains.
func ParseAll(docs ...[]byte) ([]*Domain, error) {
	var domains []*Domain
	for _, data := range docs {
		parsed, err := Parse(data)
		if err != nil {
			return nil, err
		}
		domains = append(domains, parsed...)
	}
	return domains, nil
}

func parseDomain(rd rawDomain) (*Domain, error) {
	if rd.Domain == "" {
		return nil, fmt.Errorf("%w: missing domain name", ErrMalformedSchemaRecord)
	}

	d := &Domain{
		Name:         rd.Domain,
		Description:  rd.Description,
		Experimental: rd.Experimental,
		Dependencies: rd.Dependencies,
	}

	for _, rt := range rd.Types {
		t, err := parseType(rt, rd.Domain)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", rd.Domain, err)
		}
		d.Types = append(d.Types, t)
	}
	for _, rc := range rd.Commands {
		if rc.Name == "" {
			return nil, fmt.Errorf("%w: domain %s: command without name", ErrMalformedSchemaRecord, rd.Domain)
		}
		d.Commands = append(d.Commands, Command{
			Name:         rc.Name,
			Description:  rc.Description,
			Experimental: rc.Experimental,
			Deprecated:   rc.Deprecated,
			Parameters:   parseProperties(rc.Parameters, rd.Domain),
			Returns:      parseProperties(rc.Returns, rd.Domain),
			Domain:       rd.Domain,
		})
	}
	for _, re := range rd.Events {
		if re.Name == "" {
			return nil, fmt.Errorf("%w: domain %s: event without name", ErrMalformedSchemaRecord, rd.Domain)
		}
		d.Events = append(d.Events, Event{
			Name:         re.Name,
			Description:  re.Description,
			Experimental: re.Experimental,
			Deprecated:   re.Deprecated,
			Parameters:   parseProperties(re.Parameters, rd.Domain),
			Domain:       rd.Domain,
		})
	}
	return d, nil
}

func parseType(rt rawType, domain string) (TypeDecl, error) {
	if rt.ID == "" {
		return TypeDecl{}, fmt.Errorf("%w: type without id", ErrMalformedSchemaRecord)
	}
	if rt.Type == "" {
		return TypeDecl{}, fmt.Errorf("%w: type %s has no shape marker", ErrMalformedSchemaRecord, rt.ID)
	}

	// Classify once: enum values win over properties, properties over the
	// bare primitive shape.
	kind := KindPrimitive
	switch {
	case len(rt.Enum) > 0:
		kind = KindEnum
	case len(rt.Properties) > 0:
		kind = KindObject
	}

	return TypeDecl{
		ID:          rt.ID,
		Description: rt.Description,
		Type:        rt.Type,
		Kind:        kind,
		Items:       parseItems(rt.Items),
		Enum:        rt.Enum,
		Properties:  parseProperties(rt.Properties, domain),
		Domain:      domain,
	}, nil
}

func parseItems(ri *rawItems) *Items {
	if ri == nil {
		return nil
	}
	return &Items{Type: ri.Type, Ref: ri.Ref}
}

func parseProperties(raw []rawProperty, domain string) []Property {
	if len(raw) == 0 {
		return nil
	}
	props := make([]Property, 0, len(raw))
	for _, rp := range raw {
		props = append(props, Property{
			Name:         rp.Name,
			Description:  rp.Description,
			Type:         rp.Type,
			Ref:          rp.Ref,
			Items:        parseItems(rp.Items),
			Optional:     rp.Optional,
			Experimental: rp.Experimental,
			Deprecated:   rp.Deprecated,
			Domain:       domain,
		})
	}
	return props
}
