// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argerr"
	"github.com/yeetrun/argbind/pkg/coerce"
)

func convertParam(a *action.Action, p action.Param, s string) (any, error) {
	v, err := coerce.Convert(s, p.Type)
	if err != nil {
		return nil, argerr.Newf(argerr.Conversion, err,
			"can not convert %q to %s for parameter %q of action %q", s, p.Type, p.Name, a.Name)
	}
	return v, nil
}

// defaultValue returns the value an unsupplied optional parameter binds
// to, as a copy of the declared default. Date parameters may declare their
// default as a dd-mm-yyyy string.
func defaultValue(a *action.Action, p action.Param) (any, error) {
	def := p.OptionalInfo().Default
	if s, ok := def.(string); ok && p.Type.IsDateLike() {
		return convertParam(a, p, s)
	}
	return coerce.Clone(def), nil
}

func missingRequired() error {
	return argerr.Newf(argerr.Input, argerr.ErrMissingRequired, "not all required parameters are set")
}
