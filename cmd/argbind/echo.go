// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"time"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/coerce"
)

type boundArg struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type boundCall struct {
	Action string     `json:"action"`
	Args   []boundArg `json:"args"`
}

// echoInvoker prints the resolved call instead of running anything.
type echoInvoker struct {
	w io.Writer
}

func (e echoInvoker) Invoke(_ context.Context, a *action.Action, args []any) error {
	call := boundCall{Action: a.Name, Args: make([]boundArg, len(args))}
	for i, v := range args {
		p := a.Params[i]
		call.Args[i] = boundArg{Name: p.Name, Type: p.Type.String(), Value: jsonValue(v)}
	}
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(call); err != nil {
		return outputError{err: err}
	}
	return nil
}

// jsonValue renders the types without a natural JSON form in their
// token form.
func jsonValue(v any) any {
	switch v.(type) {
	case time.Time, *big.Rat, rune:
		return coerce.Format(v)
	}
	return v
}

type outputError struct {
	err error
}

func (e outputError) Error() string { return e.err.Error() }
func (e outputError) Unwrap() error { return e.err }

func (e outputError) errorPrefix() string { return "failed to write result: " }
