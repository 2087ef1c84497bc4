// Package script reads event replay scripts written in YAML.
//
// A script names a machine, the state it starts in and the events to
// dispatch, in order:
//
//	name: lobby
//	initial: locked
//	events:
//	  - person_entering
//	  - payment_received
//
// Names are kept as strings; mapping them onto concrete state and event types
// is left to the caller.
package script

import (
	"context"
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrParsingCancelled  = errors.New("script parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse script YAML")
	ErrReadingScript     = errors.New("failed to read script")
	ErrMissingInitial    = errors.New("script has no initial state")
	ErrEmptyScript       = errors.New("script has no events")
)

// Script is a named sequence of events applied from an initial state.
type Script struct {
	Name    string   `yaml:"name"`
	Initial string   `yaml:"initial"`
	Events  []string `yaml:"events"`
}

// Parse decodes and validates a script. Blank event entries are dropped and
// surrounding whitespace is trimmed from every name.
func Parse(ctx context.Context, content []byte) (*Script, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var s Script
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	s.Name = strings.TrimSpace(s.Name)
	s.Initial = strings.TrimSpace(s.Initial)
	events := s.Events[:0]
	for _, e := range s.Events {
		if e = strings.TrimSpace(e); e != "" {
			events = append(events, e)
		}
	}
	s.Events = events

	if s.Initial == "" {
		return nil, ErrMissingInitial
	}
	if len(s.Events) == 0 {
		return nil, ErrEmptyScript
	}

	return &s, nil
}

// Load reads and parses the script at path.
func Load(ctx context.Context, path string) (*Script, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingScript, err)
	}
	return Parse(ctx, content)
}
