// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argbind resolves command-line tokens to one of a set of
// declared actions, binds the tokens to typed parameter values and hands
// the result to an Invoker.
//
// A typical host declares its actions once and calls Run from main:
//
//	actions := []action.Action{{
//		Name: "DoWork",
//		Params: []action.Param{
//			action.Req("count", coerce.Of(coerce.Int), "Number of items"),
//			action.Opt("flag", coerce.Of(coerce.Bool), false),
//		},
//	}}
//	res, err := argbind.Run(ctx, actions, os.Args[1:], argbind.Handlers{
//		"DoWork": func(ctx context.Context, args []any) error { ... },
//	}, argbind.Options{Messenger: m})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Exit(res.ExitCode())
//
// Errors raised while validating declarations or resolving and binding
// arguments are written once to the Messenger and returned in
// Result.Err. Errors returned by the Invoker are returned unchanged.
package argbind

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argerr"
	"github.com/yeetrun/argbind/pkg/notation"
	"tailscale.com/types/logger"
)

// Messenger receives usage and error lines.
type Messenger = notation.Messenger

// ErrorWriter is implemented by messengers that render errors
// differently from regular output.
type ErrorWriter interface {
	WriteError(line string)
}

// Invoker performs the call selected by Run.
type Invoker interface {
	Invoke(ctx context.Context, a *action.Action, args []any) error
}

// InvokerFunc adapts a function to an Invoker.
type InvokerFunc func(ctx context.Context, a *action.Action, args []any) error

func (f InvokerFunc) Invoke(ctx context.Context, a *action.Action, args []any) error {
	return f(ctx, a, args)
}

// HandlerFunc handles one action. args holds one value per declared
// parameter, in declaration order.
type HandlerFunc func(ctx context.Context, args []any) error

// Handlers is an Invoker dispatching on the action name. An exact key
// wins; otherwise keys are matched ignoring case, in sorted order.
type Handlers map[string]HandlerFunc

func (h Handlers) Invoke(ctx context.Context, a *action.Action, args []any) error {
	if fn, ok := h[a.Name]; ok {
		return fn(ctx, args)
	}
	for _, name := range slices.Sorted(maps.Keys(h)) {
		if strings.EqualFold(name, a.Name) {
			return h[name](ctx, args)
		}
	}
	return fmt.Errorf("no handler for action %q", a.Name)
}

// Options configure Run and Bind.
type Options struct {
	// Program is the name shown in usage lines.
	Program string
	// Notation selects the argument grammar. The zero value is
	// notation.Windows.
	Notation notation.Dialect
	// Messenger receives usage and error text. Nil discards it.
	Messenger Messenger
	// Logf receives debug logs. Nil discards them.
	Logf logger.Logf
}

func (o Options) withDefaults() Options {
	if o.Logf == nil {
		o.Logf = logger.Discard
	}
	return o
}

// Outcome is how a resolution ended.
type Outcome int

const (
	// Failed means the engine rejected the declarations or the tokens.
	Failed Outcome = iota
	// Validated means the declarations are valid and no token was parsed
	// (notation.None).
	Validated
	// HelpShown means usage was written instead of resolving an action.
	HelpShown
	// Bound means an action was resolved and its arguments bound.
	Bound
	// Invoked means the bound action was handed to the Invoker.
	Invoked
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Validated:
		return "validated"
	case HelpShown:
		return "help"
	case Bound:
		return "bound"
	case Invoked:
		return "invoked"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of one resolution.
type Result struct {
	Outcome Outcome
	// Action and Args are set once the action is bound.
	Action *action.Action
	Args   []any
	// Err is the engine error when Outcome is Failed.
	Err error
}

// ExitCode returns the process exit status for r: 1 if the engine
// failed, 0 otherwise.
func (r Result) ExitCode() int {
	if r.Outcome == Failed {
		return 1
	}
	return 0
}

// helpTokens are the first tokens that request usage output.
var helpTokens = []string{"/?", "/help", "/h", action.HelpName}

// IsHelpToken reports whether tok, as the first argument, requests usage
// output.
func IsHelpToken(tok string) bool {
	return slices.Contains(helpTokens, tok)
}

// Validate checks the declared actions without parsing any token.
func Validate(actions []action.Action) error {
	return action.NewMetadata(actions).Validate()
}

// Run binds args to one of actions and invokes it with inv. The returned
// error is non-nil only if inv is nil or failed; engine failures are
// reported through Result.
func Run(ctx context.Context, actions []action.Action, args []string, inv Invoker, opts Options) (Result, error) {
	opts = opts.withDefaults()
	res := Bind(actions, args, opts)
	if res.Outcome != Bound {
		return res, nil
	}
	if inv == nil {
		return res, fmt.Errorf("no invoker for action %q", res.Action.Name)
	}
	opts.Logf("argbind: invoking %s with %d arguments", res.Action.Name, len(res.Args))
	res.Outcome = Invoked
	return res, inv.Invoke(ctx, res.Action, res.Args)
}

// Bind does everything Run does except invoking the action.
func Bind(actions []action.Action, args []string, opts Options) Result {
	opts = opts.withDefaults()
	res := bind(action.NewMetadata(actions), args, opts)
	if res.Err != nil {
		opts.Logf("argbind: %v", res.Err)
		report(opts.Messenger, res.Err)
	}
	return res
}

func bind(md *action.Metadata, args []string, opts Options) Result {
	if err := md.Validate(); err != nil {
		return failed(err)
	}
	if opts.Notation == notation.None {
		return Result{Outcome: Validated}
	}
	s, err := notation.New(opts.Notation, md, notation.Config{
		Program:   opts.Program,
		Messenger: opts.Messenger,
		Logf:      opts.Logf,
	})
	if err != nil {
		return failed(err)
	}

	if helpRequested(md, args) {
		opts.Logf("argbind: help requested")
		if err := s.RenderUsage(args); err != nil {
			return failed(err)
		}
		return Result{Outcome: HelpShown}
	}

	a, ok := s.ResolveAction(args)
	if !ok {
		if err := s.RenderUsage(args); err != nil {
			opts.Logf("argbind: rendering usage: %v", err)
		}
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		return failed(argerr.Newf(argerr.Resolution, argerr.ErrUnknownCommand, "unknown subcommand %q", name))
	}
	opts.Logf("argbind: resolved action %s", a.Name)

	if err := s.ValidateInput(a, args); err != nil {
		return failed(err)
	}
	values, err := s.BindParameters(a, args)
	if err != nil {
		return failed(err)
	}
	return Result{Outcome: Bound, Action: a, Args: values}
}

// helpRequested reports whether args ask for usage. No arguments at all
// count as a help request unless the only action can run on defaults.
func helpRequested(md *action.Metadata, args []string) bool {
	if len(args) == 0 {
		return !md.SingleActionHasOnlyOptionalParameters()
	}
	return IsHelpToken(args[0])
}

func failed(err error) Result {
	return Result{Outcome: Failed, Err: err}
}

func report(m Messenger, err error) {
	switch m := m.(type) {
	case nil:
	case ErrorWriter:
		m.WriteError(err.Error())
	default:
		m.Write(err.Error())
	}
}
