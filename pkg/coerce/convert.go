// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coerce

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the only accepted date format, dd-mm-yyyy.
const DateLayout = "02-01-2006"

// ArraySeparator splits array tokens into their elements.
const ArraySeparator = "+"

var (
	ErrUnsupportedType = errors.New("unsupported type")
	errNotBool         = errors.New("expected true or false")
	errNotChar         = errors.New("expected exactly one character")
	errNotMember       = errors.New("no such enum member")
	errNotDecimal      = errors.New("invalid decimal")
)

// ConversionError reports a token that could not be converted to Type.
type ConversionError struct {
	Value string
	Type  Type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("can not convert %q to %s: %v", e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Convert converts s to a value of type t. See the package documentation
// for the Go type produced for each Kind.
func Convert(s string, t Type) (any, error) {
	v, err := convert(s, t)
	if err != nil {
		return nil, &ConversionError{Value: s, Type: t, Err: err}
	}
	return v, nil
}

func convert(s string, t Type) (any, error) {
	switch t.Kind {
	case Int:
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	case Int64:
		if s == "" {
			return int64(0), nil
		}
		return strconv.ParseInt(s, 10, 64)
	case Float:
		return strconv.ParseFloat(s, 64)
	case Decimal:
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, errNotDecimal
		}
		return r, nil
	case String:
		return s, nil
	case Bool:
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
		return nil, errNotBool
	case Char:
		if utf8.RuneCountInString(s) != 1 {
			return nil, errNotChar
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	case Date:
		return time.Parse(DateLayout, s)
	case Enum:
		return enumMember(s, t.Members)
	case Nullable:
		if !nullableElems[t.Elem] {
			return nil, ErrUnsupportedType
		}
		if s == "" {
			return nil, nil
		}
		return convert(s, t.Underlying())
	case StringArray:
		return strings.Split(s, ArraySeparator), nil
	case IntArray:
		parts := strings.Split(s, ArraySeparator)
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	return nil, ErrUnsupportedType
}

// enumMember prefers an exact match so that members differing only in
// case stay addressable.
func enumMember(s string, members []string) (string, error) {
	for _, m := range members {
		if m == s {
			return m, nil
		}
	}
	for _, m := range members {
		if strings.EqualFold(m, s) {
			return m, nil
		}
	}
	return "", errNotMember
}

// IsDate reports whether s parses as a dd-mm-yyyy date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
