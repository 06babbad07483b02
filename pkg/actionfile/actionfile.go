// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package actionfile loads action declarations from TOML, YAML or JSON.
//
// A TOML file looks like:
//
//	[[action]]
//	name = "delete"
//	description = "Deletes some objects"
//
//	  [[action.param]]
//	  name = "count"
//	  type = "int"
//	  description = "Object count"
//
//	  [[action.param]]
//	  name = "book"
//	  type = "bool"
//	  default = false
//	  aliases = ["b"]
//
// YAML and JSON use "actions" and "params" for the lists. A parameter is
// optional when it sets optional = true, a default or aliases, and
// required otherwise.
package actionfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/coerce"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an action file.
type Format int

const (
	TOML Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return 0, fmt.Errorf("unknown action file extension %q", filepath.Ext(path))
}

type fileSpec struct {
	Actions []actionSpec `toml:"action" yaml:"actions"`
}

type actionSpec struct {
	Name        string      `toml:"name" yaml:"name"`
	Description string      `toml:"description,omitempty" yaml:"description,omitempty"`
	Params      []paramSpec `toml:"param,omitempty" yaml:"params,omitempty"`
}

type paramSpec struct {
	Name        string   `toml:"name" yaml:"name"`
	Type        string   `toml:"type,omitempty" yaml:"type,omitempty"`
	Values      []string `toml:"values,omitempty" yaml:"values,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Required    bool     `toml:"required,omitempty" yaml:"required,omitempty"`
	Optional    bool     `toml:"optional,omitempty" yaml:"optional,omitempty"`
	Default     any      `toml:"default,omitempty" yaml:"default,omitempty"`
	Aliases     []string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Load reads the action file at path.
func Load(path string) ([]action.Action, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	actions, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return actions, nil
}

// Decode reads actions encoded in format from r. Structural problems in
// the declarations themselves are left to action validation.
func Decode(r io.Reader, format Format) ([]action.Action, error) {
	var spec fileSpec
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&spec)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case YAML, JSON:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	return spec.toActions()
}

func (s fileSpec) toActions() ([]action.Action, error) {
	actions := make([]action.Action, 0, len(s.Actions))
	for _, as := range s.Actions {
		a := action.Action{Name: as.Name, Description: as.Description}
		for _, ps := range as.Params {
			p, err := ps.toParam()
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", as.Name, err)
			}
			a.Params = append(a.Params, p)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (ps paramSpec) toParam() (action.Param, error) {
	t, err := coerce.ParseType(ps.Type, ps.Values...)
	if err != nil {
		return action.Param{}, fmt.Errorf("parameter %q: %w", ps.Name, err)
	}
	p := action.Param{
		Name:        ps.Name,
		Type:        t,
		Description: ps.Description,
		Required:    ps.Required,
	}
	if ps.Optional || ps.Default != nil || len(ps.Aliases) > 0 {
		p.Optional = &action.Optional{
			Default: normalizeDefault(t, ps.Default),
			Aliases: ps.Aliases,
		}
	}
	return p, nil
}
