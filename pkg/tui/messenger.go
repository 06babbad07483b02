// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleMessenger writes usage lines to Out and error lines to Err,
// coloring errors red when Err is a terminal.
type ConsoleMessenger struct {
	Out   io.Writer
	Err   io.Writer
	color Colorizer
}

func NewConsoleMessenger(out, errOut io.Writer) *ConsoleMessenger {
	return &ConsoleMessenger{Out: out, Err: errOut, color: NewColorizer(errOut)}
}

func (m *ConsoleMessenger) Write(line string) {
	fmt.Fprintln(m.Out, line)
}

func (m *ConsoleMessenger) WriteError(line string) {
	w := m.Err
	if w == nil {
		w = m.Out
	}
	fmt.Fprintln(w, m.color.Error(line))
}

// Recorder keeps every line in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	lines  []string
	errors []string
}

func (r *Recorder) Write(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *Recorder) WriteError(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, line)
}

// Lines returns the regular lines written so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Errors returns the error lines written so far.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
