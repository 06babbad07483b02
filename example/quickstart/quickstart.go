// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Quickstart declares a single action in code and runs it with Windows
// notation:
//
//	quickstart 3 /f
//	quickstart /?
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yeetrun/argbind/pkg/action"
	"github.com/yeetrun/argbind/pkg/argbind"
	"github.com/yeetrun/argbind/pkg/coerce"
	"github.com/yeetrun/argbind/pkg/tui"
)

var actions = []action.Action{{
	Name:        "DoWork",
	Description: "Prints a greeting count times",
	Params: []action.Param{
		action.Req("count", coerce.Of(coerce.Int), "How many greetings"),
		action.Opt("flag", coerce.Of(coerce.Bool), false, "f").Describe("Shout the greeting"),
	},
}}

func doWork(count int, flag bool) {
	msg := "Hello, World!"
	if flag {
		msg = "HELLO, WORLD!"
	}
	for range count {
		fmt.Println(msg)
	}
}

func main() {
	handlers := argbind.Handlers{
		"DoWork": func(_ context.Context, args []any) error {
			doWork(args[0].(int), args[1].(bool))
			return nil
		},
	}
	res, err := argbind.Run(context.Background(), actions, os.Args[1:], handlers, argbind.Options{
		Program:   "quickstart",
		Messenger: tui.NewConsoleMessenger(os.Stdout, os.Stderr),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(res.ExitCode())
}
