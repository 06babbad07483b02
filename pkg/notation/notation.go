// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation implements the argument grammars understood by the
// engine.
//
// The Windows notation takes required parameters positionally and
// optional ones as /name:value, /name (true) or /-name (false). The Linux
// notation takes required parameters positionally followed by -name value
// pairs. Both share action resolution: with a single declared action that
// action is always selected, otherwise the first token names it.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yeetrun/argbind/pkg/action"
	"tailscale.com/types/logger"
)

// Messenger receives the lines of usage and error text. The engine never
// writes to the console itself.
type Messenger interface {
	Write(line string)
}

// MessengerFunc adapts a function to a Messenger.
type MessengerFunc func(line string)

func (f MessengerFunc) Write(line string) { f(line) }

var discard = MessengerFunc(func(string) {})

// Strategy is implemented by each notation.
type Strategy interface {
	// ResolveAction returns the action selected by args.
	ResolveAction(args []string) (*action.Action, bool)
	// ValidateInput checks the shape of args before binding.
	ValidateInput(a *action.Action, args []string) error
	// BindParameters converts args into one value per parameter of a,
	// in declaration order.
	BindParameters(a *action.Action, args []string) ([]any, error)
	// RenderUsage writes help text for the request in args.
	RenderUsage(args []string) error
}

// Dialect selects a notation.
type Dialect int

const (
	Windows Dialect = iota
	Linux
	// None validates declarations without parsing any argument.
	None
)

func (d Dialect) String() string {
	switch d {
	case None:
		return "none"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect parses a dialect name, ignoring case.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "windows", "win":
		return Windows, nil
	case "linux":
		return Linux, nil
	}
	return Windows, fmt.Errorf("unknown notation %q (want windows, linux or none)", s)
}

func (d *Dialect) UnmarshalText(b []byte) error {
	v, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config carries what a Strategy needs besides the action metadata.
type Config struct {
	// Program is the name shown in usage lines.
	Program string
	// Messenger receives usage text. Nil discards it.
	Messenger Messenger
	// Logf receives failures that do not stop binding. Nil discards them.
	Logf logger.Logf
}

var errNoStrategy = errors.New("notation none has no parsing strategy")

// New returns the Strategy for dialect d.
func New(d Dialect, md *action.Metadata, cfg Config) (Strategy, error) {
	c := newCommon(md, cfg)
	switch d {
	case Windows:
		return &WindowsStrategy{common: c}, nil
	case Linux:
		return &LinuxStrategy{common: c}, nil
	case None:
		return nil, errNoStrategy
	}
	return nil, fmt.Errorf("unknown notation %v", d)
}

// common is shared by both notations.
type common struct {
	md      *action.Metadata
	program string
	msg     Messenger
	logf    logger.Logf
}

func newCommon(md *action.Metadata, cfg Config) common {
	msg := cfg.Messenger
	if msg == nil {
		msg = discard
	}
	logf := cfg.Logf
	if logf == nil {
		logf = logger.Discard
	}
	return common{md: md, program: cfg.Program, msg: msg, logf: logf}
}

func (c common) ResolveAction(args []string) (*action.Action, bool) {
	if !c.md.IsMultiCommand() {
		a := c.md.First()
		return a, a != nil
	}
	if len(args) == 0 {
		return nil, false
	}
	return c.md.FindByName(args[0])
}

// firstArg is the index of the first parameter token.
func (c common) firstArg() int {
	if c.md.IsMultiCommand() {
		return 1
	}
	return 0
}

func (c common) write(lines []string) {
	for _, l := range lines {
		c.msg.Write(l)
	}
}
