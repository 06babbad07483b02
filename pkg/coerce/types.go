// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coerce converts command-line tokens into typed values.
//
// The set of supported types is closed: a Type is a Kind plus the extra
// data a few kinds need (the element of a Nullable, the members of an
// Enum). Adding a type means adding a Kind and a case to each switch in
// this package.
//
// Go representations of converted values:
//
//	Int          int
//	Int64        int64
//	Float        float64
//	Decimal      *big.Rat
//	String       string
//	Bool         bool
//	Char         rune
//	Date         time.Time
//	Enum         string (the canonical member name)
//	Nullable     nil or the element's representation
//	StringArray  []string
//	IntArray     []int
package coerce

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported parameter types.
type Kind int

const (
	Invalid Kind = iota
	Int
	Int64
	Float
	Decimal
	String
	Bool
	Char
	Date
	Enum
	Nullable
	StringArray
	IntArray
)

var kindNames = map[Kind]string{
	Int:         "int",
	Int64:       "int64",
	Float:       "float",
	Decimal:     "decimal",
	String:      "string",
	Bool:        "bool",
	Char:        "char",
	Date:        "date",
	Enum:        "enum",
	Nullable:    "nullable",
	StringArray: "string[]",
	IntArray:    "int[]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type is a declared parameter type.
type Type struct {
	Kind Kind
	// Elem is the underlying kind of a Nullable.
	Elem Kind
	// Members lists the member names of an Enum, or of a Nullable whose
	// Elem is Enum.
	Members []string
}

// Of returns the Type for a kind that needs no extra data.
func Of(k Kind) Type {
	return Type{Kind: k}
}

// EnumOf returns an enumeration type with the given member names.
func EnumOf(members ...string) Type {
	return Type{Kind: Enum, Members: members}
}

// NullableOf returns a nullable wrapper around elem.
func NullableOf(elem Type) Type {
	return Type{Kind: Nullable, Elem: elem.Kind, Members: elem.Members}
}

// Underlying returns the element type of a Nullable and t itself for
// every other kind.
func (t Type) Underlying() Type {
	if t.Kind != Nullable {
		return t
	}
	return Type{Kind: t.Elem, Members: t.Members}
}

// IsDateLike reports whether t is a Date or a Nullable Date.
func (t Type) IsDateLike() bool {
	return t.Underlying().Kind == Date
}

// CanBeNil reports whether nil is a valid value of t.
func (t Type) CanBeNil() bool {
	switch t.Kind {
	case String, StringArray, IntArray, Nullable:
		return true
	}
	return false
}

func (t Type) String() string {
	switch t.Kind {
	case Nullable:
		return t.Underlying().String() + "?"
	case Enum:
		return "enum(" + strings.Join(t.Members, "|") + ")"
	}
	return t.Kind.String()
}

// nullableElems are the kinds a Nullable may wrap.
var nullableElems = map[Kind]bool{
	Int:     true,
	Int64:   true,
	Float:   true,
	Decimal: true,
	Bool:    true,
	Char:    true,
	Date:    true,
	Enum:    true,
}

// ParseType parses a type name as written in declarative action files.
// A trailing "?" makes the type nullable. Enum members are supplied
// separately and are attached to the returned Type.
func ParseType(name string, members ...string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if base, ok := strings.CutSuffix(name, "?"); ok {
		elem, err := ParseType(base, members...)
		if err != nil {
			return Type{}, err
		}
		if !nullableElems[elem.Kind] {
			return Type{}, fmt.Errorf("type %q can not be nullable", base)
		}
		return NullableOf(elem), nil
	}
	var k Kind
	switch name {
	case "int", "integer":
		k = Int
	case "int64", "long":
		k = Int64
	case "float", "double", "float64":
		k = Float
	case "decimal":
		k = Decimal
	case "string", "":
		k = String
	case "bool", "boolean":
		k = Bool
	case "char", "rune":
		k = Char
	case "date":
		k = Date
	case "enum":
		if len(members) == 0 {
			return Type{}, fmt.Errorf("enum type declared without values")
		}
		return EnumOf(members...), nil
	case "string[]", "[]string":
		k = StringArray
	case "int[]", "[]int":
		k = IntArray
	default:
		return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
	}
	return Of(k), nil
}
