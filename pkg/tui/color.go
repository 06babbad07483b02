// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer enables colors when w is a terminal and the environment
// does not opt out via NO_COLOR or a dumb TERM.
func NewColorizer(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	p := color.New(attr)
	p.EnableColor()
	return p.Sprint(text)
}

func (c Colorizer) Error(text string) string {
	return c.Wrap(color.FgRed, text)
}

func (c Colorizer) Dim(text string) string {
	return c.Wrap(color.FgHiBlack, text)
}
