// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argbind binds command-line tokens against actions declared in
// a TOML, YAML or JSON file and prints the resolved call as JSON.
//
//	argbind --actions actions.toml -- delete 5 "old stuff" /b
//
// Tokens after "--" are handed to the engine untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argbind/pkg/actionfile"
	"github.com/yeetrun/argbind/pkg/argbind"
	"github.com/yeetrun/argbind/pkg/notation"
	"github.com/yeetrun/argbind/pkg/tui"
	"tailscale.com/util/set"
)

var loadedSettings settings

func init() {
	s, err := loadSettings(os.Getenv)
	if err != nil {
		log.Printf("failed to load settings: %v", err)
	}
	loadedSettings = s
}

type globalFlagsParsed struct {
	Actions  string `flag:"actions" help:"Action file to load (ARGBIND_ACTIONS)"`
	Notation string `flag:"notation" help:"Argument notation: windows, linux or none (ARGBIND_NOTATION)"`
	Program  string `flag:"program" help:"Program name shown in usage output"`
	Verbose  bool   `flag:"verbose" help:"Log resolution steps to stderr"`
}

// valueFlags are the global flags that consume the following token when
// not written as --name=value.
var valueFlags = set.Of("actions", "notation", "program")

// splitGlobalArgs separates the leading global flags from the engine
// tokens. Global flags end at "--", which is dropped, or at the first
// token that is neither a flag nor a flag value. Everything after that
// point belongs to the engine, even tokens that look like global flags.
func splitGlobalArgs(args []string) (global, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			return args[:i], args[i:]
		}
		if !strings.Contains(a, "=") && valueFlags.Contains(strings.TrimLeft(a, "-")) {
			i++
		}
	}
	return args, nil
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	global, rest := splitGlobalArgs(args)
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](global, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	// Unknown leading flags are handed to the engine ahead of the rest.
	return result.Flags, append(slices.Clip(result.RemainingArgs), rest...), nil
}

// applyFlags overrides s with the flags that were set.
func applyFlags(s settings, f globalFlagsParsed) (settings, error) {
	if f.Actions != "" {
		s.Actions = f.Actions
	}
	if f.Notation != "" {
		d, err := notation.ParseDialect(f.Notation)
		if err != nil {
			return s, err
		}
		s.Notation = d
	}
	if f.Program != "" {
		s.Program = f.Program
	}
	if s.Program == "" {
		s.Program = filepath.Base(os.Args[0])
	}
	return s, nil
}

type errorPrefixer interface {
	errorPrefix() string
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var pref errorPrefixer
	if errors.As(err, &pref) {
		if prefix := pref.errorPrefix(); prefix != "" {
			fmt.Fprint(w, prefix)
		}
	}
	fmt.Fprintln(w, err)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, rest, err := parseGlobalFlags(args)
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}
	s, err := applyFlags(loadedSettings, flags)
	if err != nil {
		printCLIError(stderr, err)
		return 2
	}
	if s.Actions == "" {
		printCLIError(stderr, errors.New("no action file: pass --actions, set ARGBIND_ACTIONS or add "+projectConfigName))
		return 2
	}
	actions, err := actionfile.Load(s.Actions)
	if err != nil {
		printCLIError(stderr, err)
		return 1
	}

	opts := argbind.Options{
		Program:   s.Program,
		Notation:  s.Notation,
		Messenger: tui.NewConsoleMessenger(stdout, stderr),
	}
	if flags.Verbose {
		logger := log.New(stderr, "", 0)
		c := tui.NewColorizer(stderr)
		opts.Logf = func(format string, args ...any) {
			logger.Print(c.Dim(fmt.Sprintf(format, args...)))
		}
	}
	res, err := argbind.Run(ctx, actions, rest, echoInvoker{w: stdout}, opts)
	if err != nil {
		printCLIError(stderr, err)
		return 1
	}
	if opts.Logf != nil {
		opts.Logf("argbind: %v", res.Outcome)
	}
	return res.ExitCode()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
