// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"strings"

	"github.com/yeetrun/argbind/pkg/argerr"
	"github.com/yeetrun/argbind/pkg/coerce"
	"tailscale.com/util/set"
)

// HelpName is the reserved name of the help subcommand.
const HelpName = "help"

// Validate checks the declared actions before any token is parsed and
// returns the first problem found as an *argerr.Error of category
// argerr.Declaration.
func (m *Metadata) Validate() error {
	if len(m.actions) == 0 {
		return argerr.Newf(argerr.Declaration, argerr.ErrNoAction, "no action declared")
	}
	if len(m.actions) == 1 && len(m.actions[0].Params) == 0 {
		return argerr.Newf(argerr.Declaration, argerr.ErrParameterless,
			"single action %q declared without parameters, call it directly instead", m.actions[0].Name)
	}
	for _, a := range m.actions {
		if err := validateAction(a); err != nil {
			return err
		}
	}
	return nil
}

func validateAction(a *Action) error {
	checks := []func(*Action) error{
		checkReservedName,
		checkClassification,
		checkOrder,
		checkDefaults,
		checkDuplicateNames,
	}
	for _, check := range checks {
		if err := check(a); err != nil {
			return err
		}
	}
	return nil
}

func checkReservedName(a *Action) error {
	if strings.EqualFold(a.Name, HelpName) {
		return argerr.Newf(argerr.Declaration, argerr.ErrReservedName,
			"action name %q is reserved, choose another name", a.Name)
	}
	return nil
}

func checkClassification(a *Action) error {
	for _, p := range a.Params {
		if p.Required && p.Optional != nil {
			return argerr.Newf(argerr.Declaration, argerr.ErrClassification,
				"more than one classification is applied to parameter %q in action %q", p.Name, a.Name)
		}
	}
	return nil
}

func checkOrder(a *Action) error {
	optionalSeen := false
	for _, p := range a.Params {
		if p.IsOptional() {
			optionalSeen = true
			continue
		}
		if optionalSeen {
			return argerr.Newf(argerr.Declaration, argerr.ErrOrder,
				"required parameter %q in action %q follows an optional parameter", p.Name, a.Name)
		}
	}
	return nil
}

func checkDefaults(a *Action) error {
	for _, p := range a.Params {
		if p.IsRequired() {
			continue
		}
		def := p.Optional.Default
		if s, ok := def.(string); ok && p.Type.IsDateLike() && coerce.IsDate(s) {
			continue
		}
		if !coerce.Assignable(p.Type, def) {
			return argerr.Newf(argerr.Declaration, argerr.ErrDefault,
				"default value for optional parameter %q in action %q can not be assigned to the parameter", p.Name, a.Name)
		}
	}
	return nil
}

// checkDuplicateNames treats required names, optional names and aliases
// as one case-insensitive namespace.
func checkDuplicateNames(a *Action) error {
	seen := make(set.Set[string])
	for _, p := range a.Params {
		for _, name := range p.Names() {
			key := strings.ToLower(name)
			if seen.Contains(key) {
				return argerr.Newf(argerr.Declaration, argerr.ErrDuplicateName,
					"duplicated parameter name %q in action %q, check the aliases of optional parameters", name, a.Name)
			}
			seen.Add(key)
		}
	}
	return nil
}
