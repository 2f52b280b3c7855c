// Input loading for the roster CLI: YAML entries in, registry out.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/roster/pkg/roster"
)

// errBadInput marks malformed input files for exit-code classification.
var errBadInput = errors.New("malformed input file")

// Entry is the record type the CLI loads. Names must be unique across
// the set; ids are UUIDs, generated when the input omits them.
type Entry struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Note string    `json:"note,omitempty"`
}

// inputFile is the YAML document shape:
//
//	entries:
//	  - id: 019212d3-...   # optional
//	    name: Alice
//	    note: on call this week
type inputFile struct {
	Entries []inputEntry `yaml:"entries"`
}

type inputEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Note string `yaml:"note"`
}

// entrySchema declares the CLI's key schema: string keys resolve
// through names, identifier keys through ids.
func entrySchema() roster.Schema[Entry] {
	return roster.Schema[Entry]{
		Keys: []roster.KeyConfig[Entry]{
			{PropName: "names", AttrName: "name", Kind: roster.KindString, Value: func(e Entry) any { return e.Name }},
			{PropName: "ids", AttrName: "id", Kind: roster.KindIdentifier, Value: func(e Entry) any { return e.ID }},
		},
		Attrs: []roster.Attr[Entry]{
			{Name: "id", Value: func(e Entry) any { return e.ID }},
			{Name: "name", Value: func(e Entry) any { return e.Name }},
			{Name: "note", Value: func(e Entry) any { return e.Note }},
		},
	}
}

// loadRegistry reads the resolved input file and builds the registry.
// Schema and uniqueness violations surface here, before any subcommand
// logic runs.
func loadRegistry() (*roster.Registry[Entry], error) {
	path, err := resolveInput()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	entries, err := parseEntries(raw)
	if err != nil {
		return nil, err
	}

	reg, err := roster.New(entrySchema(),
		roster.WithLogger[Entry](logger),
		roster.WithRecords(entries...))
	if err != nil {
		return nil, fmt.Errorf("build registry from %s: %w", path, err)
	}

	logger.Debug("registry loaded", "path", path, "records", reg.Len())
	return reg, nil
}

// parseEntries decodes the YAML document and validates each entry.
// Entries without an id get a generated UUID v7.
func parseEntries(raw []byte) ([]Entry, error) {
	var doc inputFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadInput, err)
	}

	entries := make([]Entry, 0, len(doc.Entries))
	for i, in := range doc.Entries {
		if in.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", errBadInput, i)
		}
		e := Entry{Name: in.Name, Note: in.Note}
		if in.ID == "" {
			e.ID = roster.NewID()
		} else {
			id, err := uuid.Parse(in.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d id: %v", errBadInput, i, err)
			}
			e.ID = id
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// parseKey turns a CLI argument into a lookup key: a UUID string is an
// identifier key, anything else a string key.
func parseKey(arg string) roster.Key {
	if id, err := uuid.Parse(arg); err == nil {
		return roster.ID(id)
	}
	return roster.String(arg)
}
