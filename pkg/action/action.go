// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package action describes the operations a program exposes on the
// command line and answers structural questions about them.
//
// Actions are plain data: a host builds them once at startup (in Go, or
// by loading a declarative file) and the rest of the engine only reads
// them.
package action

import (
	"slices"
	"strings"

	"github.com/yeetrun/argbind/pkg/coerce"
)

// Action is a named operation with an ordered parameter list. Required
// parameters come first, optional ones trail.
type Action struct {
	Name        string
	Description string
	Params      []Param
}

// Param is one parameter of an Action.
//
// A Param with a nil Optional is required. Setting Required together with
// a non-nil Optional is a declaration error reported by Validate.
type Param struct {
	Name        string
	Type        coerce.Type
	Description string
	Required    bool
	Optional    *Optional
}

// Optional holds what only optional parameters have.
type Optional struct {
	Default any
	Aliases []string
}

// Req returns a required parameter.
func Req(name string, t coerce.Type, description string) Param {
	return Param{Name: name, Type: t, Description: description, Required: true}
}

// Opt returns an optional parameter with the given default and aliases.
func Opt(name string, t coerce.Type, def any, aliases ...string) Param {
	return Param{Name: name, Type: t, Optional: &Optional{Default: def, Aliases: aliases}}
}

// Describe returns a copy of p with its description set.
func (p Param) Describe(description string) Param {
	p.Description = description
	return p
}

func (p Param) IsRequired() bool { return p.Optional == nil }
func (p Param) IsOptional() bool { return p.Optional != nil }

// OptionalInfo returns the default and aliases of an optional parameter,
// and the zero Optional for a required one.
func (p Param) OptionalInfo() Optional {
	if p.Optional == nil {
		return Optional{}
	}
	return *p.Optional
}

// Names returns the parameter's own name followed by its aliases.
func (p Param) Names() []string {
	names := []string{p.Name}
	if p.Optional != nil {
		names = append(names, p.Optional.Aliases...)
	}
	return names
}

// RequiredCount returns the number of required parameters of a.
func (a *Action) RequiredCount() int {
	n := 0
	for _, p := range a.Params {
		if p.IsRequired() {
			n++
		}
	}
	return n
}

// Metadata answers structural questions about a set of actions.
// It never mutates the actions it was built from.
type Metadata struct {
	actions []*Action
}

// NewMetadata returns Metadata over a deep copy of actions, so later
// changes by the caller, or by whoever receives bound values, never reach
// the declarations.
func NewMetadata(actions []Action) *Metadata {
	m := &Metadata{actions: make([]*Action, len(actions))}
	for i, a := range actions {
		m.actions[i] = a.clone()
	}
	return m
}

func (a Action) clone() *Action {
	a.Params = slices.Clone(a.Params)
	for i, p := range a.Params {
		if p.Optional == nil {
			continue
		}
		a.Params[i].Optional = &Optional{
			Default: coerce.Clone(p.Optional.Default),
			Aliases: slices.Clone(p.Optional.Aliases),
		}
	}
	return &a
}

// Actions returns the declared actions in declaration order.
func (m *Metadata) Actions() []*Action {
	return m.actions
}

// IsMultiCommand reports whether more than one action is declared, in
// which case the first token names the action.
func (m *Metadata) IsMultiCommand() bool {
	return len(m.actions) > 1
}

// First returns the first declared action, or nil if there is none.
func (m *Metadata) First() *Action {
	if len(m.actions) == 0 {
		return nil
	}
	return m.actions[0]
}

// FindByName looks an action up by name, ignoring case.
func (m *Metadata) FindByName(name string) (*Action, bool) {
	for _, a := range m.actions {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return nil, false
}

// RequiredCount returns the number of required parameters of a.
func (m *Metadata) RequiredCount(a *Action) int {
	return a.RequiredCount()
}

// SingleActionHasOnlyOptionalParameters reports whether exactly one action
// is declared and all of its parameters are optional. Running such a
// program without arguments invokes the action with its defaults instead
// of printing help.
func (m *Metadata) SingleActionHasOnlyOptionalParameters() bool {
	if len(m.actions) != 1 {
		return false
	}
	for _, p := range m.actions[0].Params {
		if p.IsRequired() {
			return false
		}
	}
	return true
}
