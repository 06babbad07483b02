// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"strings"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argerr"
	"tailscale.com/util/mak"
)

// LinuxStrategy parses positional arguments followed by -name value
// pairs.
//
//	program [subcommand] required1 required2 [-name value]...
//
// Optional parameters are matched by their own name only; aliases are a
// Windows notation feature.
type LinuxStrategy struct {
	common
}

// ValidateInput does nothing; the Linux notation only fails on what it
// can not bind.
func (l *LinuxStrategy) ValidateInput(*action.Action, []string) error {
	return nil
}

func (l *LinuxStrategy) BindParameters(a *action.Action, args []string) ([]any, error) {
	var rest []string
	if start := l.firstArg(); start < len(args) {
		rest = args[start:]
	}
	required := a.RequiredCount()
	if len(rest) < required {
		return nil, missingRequired()
	}

	var supplied map[string]string
	pairs := rest[required:]
	for i := 0; i < len(pairs); i += 2 {
		if i+1 >= len(pairs) {
			return nil, argerr.Newf(argerr.Input, argerr.ErrMissingValue, "parameter %s has no value", pairs[i])
		}
		name := strings.ToLower(strings.TrimLeft(pairs[i], "-"))
		mak.Set(&supplied, name, pairs[i+1])
	}

	values := make([]any, len(a.Params))
	for i, p := range a.Params {
		var (
			v   any
			err error
		)
		switch {
		case p.IsRequired():
			v, err = convertParam(a, p, rest[i])
		default:
			if s, ok := supplied[strings.ToLower(p.Name)]; ok {
				v, err = convertParam(a, p, s)
			} else {
				v, err = defaultValue(a, p)
			}
		}
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// RenderUsage always fails: the Linux notation has no help output.
func (l *LinuxStrategy) RenderUsage([]string) error {
	return argerr.Newf(argerr.Usage, argerr.ErrUnsupported, "usage is not supported for the %s notation", Linux)
}
