// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argbind/pkg/notation"
)

const projectConfigName = "argbind.toml"

// settings are resolved from, in increasing priority, argbind.toml found
// in the working directory or one of its parents, the environment and
// the command-line flags.
type settings struct {
	Actions  string           `toml:"actions,omitempty"`
	Notation notation.Dialect `toml:"notation,omitempty"`
	Program  string           `toml:"program,omitempty"`
}

func loadSettings(getenv func(string) string) (settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return settings{}, err
	}
	s, err := loadSettingsFromDir(cwd)
	if err != nil {
		return settings{}, err
	}
	return applyEnv(s, getenv)
}

func applyEnv(s settings, getenv func(string) string) (settings, error) {
	if v := getenv("ARGBIND_ACTIONS"); v != "" {
		s.Actions = v
	}
	if v := getenv("ARGBIND_NOTATION"); v != "" {
		d, err := notation.ParseDialect(v)
		if err != nil {
			return s, fmt.Errorf("ARGBIND_NOTATION: %w", err)
		}
		s.Notation = d
	}
	return s, nil
}

// loadSettingsFromDir reads the nearest argbind.toml at or above dir.
// A relative actions path is taken relative to the config file.
func loadSettingsFromDir(dir string) (settings, error) {
	path, err := findProjectConfigPath(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings{}, nil
		}
		return settings{}, err
	}
	var s settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Actions != "" && !filepath.IsAbs(s.Actions) {
		s.Actions = filepath.Join(filepath.Dir(path), s.Actions)
	}
	return s, nil
}

func findProjectConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, projectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
