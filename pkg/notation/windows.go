// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"strings"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argerr"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// WindowsStrategy parses /name:value style arguments.
//
//	program [subcommand] required1 required2 [/name:value] [/flag] [/-flag]
type WindowsStrategy struct {
	common
}

// ValidateInput checks, in order, that all required parameters are
// present, that every optional token starts with '/', that no name is
// supplied twice and that every optional token names a declared
// parameter or alias.
//
// Repeats are detected per name as written: "/b /-bk" names one
// parameter through two aliases and is accepted, the last token winning.
func (w *WindowsStrategy) ValidateInput(a *action.Action, args []string) error {
	if len(args) < w.firstArg()+a.RequiredCount() {
		if lines, err := w.ActionUsage(a); err != nil {
			w.logf("notation: rendering usage of %s: %v", a.Name, err)
		} else {
			w.write(lines)
		}
		return missingRequired()
	}
	seen := make(set.Set[string])
	for _, tok := range w.optionalTokens(a, args) {
		if !strings.HasPrefix(tok, "/") {
			return argerr.Newf(argerr.Input, argerr.ErrUnknownParam, "unknown parameter %s", tok)
		}
		name := tokenName(tok)
		if seen.Contains(name) {
			return argerr.Newf(argerr.Input, argerr.ErrDuplicateParam, "parameter with name %s passed two times", name)
		}
		seen.Add(name)
	}
	slots := optionalSlots(a)
	for _, tok := range w.optionalTokens(a, args) {
		if _, ok := slots[tokenName(tok)]; !ok {
			return argerr.Newf(argerr.Input, argerr.ErrUnknownName, "unknown parameter name %s", tok)
		}
	}
	return nil
}

// BindParameters converts required tokens positionally and optional
// tokens by name. Optional parameters that were not supplied take their
// declared default.
func (w *WindowsStrategy) BindParameters(a *action.Action, args []string) ([]any, error) {
	values := make([]any, len(a.Params))
	next := w.firstArg()
	for i, p := range a.Params {
		var (
			v   any
			err error
		)
		if p.IsRequired() {
			if next >= len(args) {
				return nil, missingRequired()
			}
			v, err = convertParam(a, p, args[next])
			next++
		} else {
			v, err = defaultValue(a, p)
		}
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	slots := optionalSlots(a)
	for _, tok := range w.optionalTokens(a, args) {
		i, ok := slots[tokenName(tok)]
		if !ok {
			return nil, argerr.Newf(argerr.Input, argerr.ErrUnknownName, "unknown parameter name %s", tok)
		}
		v, err := convertParam(a, a.Params[i], tokenValue(tok))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// optionalTokens returns the tokens after the subcommand and the required
// parameters.
func (w *WindowsStrategy) optionalTokens(a *action.Action, args []string) []string {
	start := w.firstArg() + a.RequiredCount()
	if start >= len(args) {
		return nil
	}
	return args[start:]
}

// optionalSlots maps every lower-cased optional name and alias to the
// index of its parameter.
func optionalSlots(a *action.Action) map[string]int {
	var slots map[string]int
	for i, p := range a.Params {
		if p.IsRequired() {
			continue
		}
		for _, name := range p.Names() {
			mak.Set(&slots, strings.ToLower(name), i)
		}
	}
	return slots
}

// tokenName returns the lower-cased parameter name of an optional token:
// "x" for "/-x", "/x:value" and "/x".
func tokenName(tok string) string {
	if rest, ok := strings.CutPrefix(tok, "/-"); ok {
		return strings.ToLower(rest)
	}
	tok = strings.TrimPrefix(tok, "/")
	name, _, _ := strings.Cut(tok, ":")
	return strings.ToLower(name)
}

// tokenValue returns the value carried by an optional token.
func tokenValue(tok string) string {
	if strings.HasPrefix(tok, "/-") {
		return "false"
	}
	if _, v, ok := strings.Cut(tok, ":"); ok {
		return v
	}
	return "true"
}
