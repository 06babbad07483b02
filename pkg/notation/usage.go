// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argerr"
	"github.com/yeetrun/argbind/pkg/coerce"
)

const indent = "    "

// RenderUsage writes the usage of the single action, of the action named
// by "help <name>", or the list of subcommands.
func (w *WindowsStrategy) RenderUsage(args []string) error {
	if !w.md.IsMultiCommand() {
		return w.writeActionUsage(w.md.First())
	}
	if len(args) == 2 && strings.EqualFold(args[0], action.HelpName) {
		a, ok := w.md.FindByName(args[1])
		if !ok {
			w.write(w.CommandsUsage())
			return argerr.Newf(argerr.Resolution, argerr.ErrUnknownCommand, "unknown subcommand %q", args[1])
		}
		return w.writeActionUsage(a)
	}
	w.write(w.CommandsUsage())
	return nil
}

func (w *WindowsStrategy) writeActionUsage(a *action.Action) error {
	lines, err := w.ActionUsage(a)
	if err != nil {
		return err
	}
	w.write(lines)
	return nil
}

// ActionUsage returns the help lines for a: its description, a usage
// line, and an indented entry for every parameter that has a description
// or a default value.
//
//	usage: program count [/flag]
//	    count   Number of items
//	    [/flag]
//	        default value: false
func (w *WindowsStrategy) ActionUsage(a *action.Action) ([]string, error) {
	display := make([]string, len(a.Params))
	width := 0
	for i, p := range a.Params {
		d, err := displayName(p)
		if err != nil {
			return nil, argerr.Newf(argerr.Conversion, err,
				"can not render usage of parameter %q in action %q: %v", p.Name, a.Name, err)
		}
		display[i] = d
		width = max(width, utf8.RuneCountInString(d))
	}

	var lines []string
	if a.Description != "" {
		lines = append(lines, a.Description)
	}
	sub := ""
	if w.md.IsMultiCommand() {
		sub = strings.ToLower(a.Name) + " "
	}
	lines = append(lines, "usage: "+w.program+" "+sub+strings.Join(display, " "))

	for i, p := range a.Params {
		def := p.OptionalInfo().Default
		hasDefault := p.IsOptional() && def != nil
		if p.Description != "" || hasDefault {
			line := indent + display[i]
			if p.Description != "" {
				pad := width - utf8.RuneCountInString(display[i]) + 2
				line += strings.Repeat(" ", pad) + p.Description
			}
			lines = append(lines, line)
		}
		if hasDefault {
			lines = append(lines, indent+indent+"default value: "+defaultText(def))
		}
	}
	return lines, nil
}

// CommandsUsage returns the overview printed when no subcommand is
// selected.
func (w *WindowsStrategy) CommandsUsage() []string {
	lines := []string{
		fmt.Sprintf("usage: %s <subcommand> [args]", w.program),
		fmt.Sprintf("Type '%s help <subcommand>' for help on a specific subcommand.", w.program),
		"",
		"Available subcommands:",
	}
	for _, a := range w.md.Actions() {
		lines = append(lines, strings.TrimSpace(strings.ToLower(a.Name)+" "+a.Description))
	}
	return lines
}

// displayName is how a parameter appears on the usage line: the bare
// name for required parameters and [/name:hint] for optional ones, where
// name is the first alias if there is one. Booleans have no hint.
func displayName(p action.Param) (string, error) {
	if p.IsRequired() {
		return p.Name, nil
	}
	name := p.Name
	if aliases := p.OptionalInfo().Aliases; len(aliases) > 0 {
		name = aliases[0]
	}
	t := p.Type.Underlying()
	if t.Kind != coerce.Bool {
		hint, err := coerce.Hint(t)
		if err != nil {
			return "", err
		}
		name += ":" + hint
	}
	return "[/" + name + "]", nil
}

func defaultText(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return coerce.Format(v)
}
