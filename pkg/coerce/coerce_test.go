// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coerce

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		typ  Type
		want any
	}{
		{"int", "11", Of(Int), 11},
		{"negative int", "-3", Of(Int), -3},
		{"empty int", "", Of(Int), 0},
		{"empty int64", "", Of(Int64), int64(0)},
		{"int64", "1234567890123", Of(Int64), int64(1234567890123)},
		{"float", "11.11", Of(Float), 11.11},
		{"string", "test", Of(String), "test"},
		{"empty string", "", Of(String), ""},
		{"bool", "true", Of(Bool), true},
		{"bool mixed case", "FaLsE", Of(Bool), false},
		{"char", "a", Of(Char), 'a'},
		{"multibyte char", "é", Of(Char), 'é'},
		{"date", "01-02-2008", Of(Date), time.Date(2008, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"enum exact", "FIRST", EnumOf("First", "Second", "FIRST"), "FIRST"},
		{"enum case-insensitive", "second", EnumOf("First", "Second"), "Second"},
		{"nullable empty", "", NullableOf(Of(Int)), nil},
		{"nullable value", "7", NullableOf(Of(Int)), 7},
		{"nullable date", "10-10-2010", NullableOf(Of(Date)), time.Date(2010, time.October, 10, 0, 0, 0, 0, time.UTC)},
		{"string array", "a+b+c", Of(StringArray), []string{"a", "b", "c"}},
		{"int array", "1+2+3", Of(IntArray), []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.in, tt.typ)
			if err != nil {
				t.Fatalf("Convert(%q, %s) error: %v", tt.in, tt.typ, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Convert(%q, %s) mismatch (-want +got):\n%s", tt.in, tt.typ, diff)
			}
		})
	}
}

func TestConvertDecimal(t *testing.T) {
	got, err := Convert("10.00", Of(Decimal))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	r, ok := got.(*big.Rat)
	if !ok {
		t.Fatalf("Convert returned %T, want *big.Rat", got)
	}
	if r.Cmp(big.NewRat(10, 1)) != 0 {
		t.Errorf("Convert = %s, want 10", r.RatString())
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		typ  Type
	}{
		{"int text", "abc", Of(Int)},
		{"int overflow", "99999999999999999999", Of(Int)},
		{"float text", "x", Of(Float)},
		{"decimal text", "ten", Of(Decimal)},
		{"bool word", "yes", Of(Bool)},
		{"char empty", "", Of(Char)},
		{"char long", "ab", Of(Char)},
		{"date format", "2008-02-01", Of(Date)},
		{"enum unknown", "third", EnumOf("First", "Second")},
		{"int array item", "1+x", Of(IntArray)},
		{"invalid kind", "1", Type{}},
		{"nullable string", "x", Type{Kind: Nullable, Elem: String}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.in, tt.typ)
			var ce *ConversionError
			if !errors.As(err, &ce) {
				t.Fatalf("Convert(%q, %s) error = %v, want *ConversionError", tt.in, tt.typ, err)
			}
			if ce.Value != tt.in {
				t.Errorf("ConversionError.Value = %q, want %q", ce.Value, tt.in)
			}
		})
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := Convert("1", Type{Kind: Kind(99)})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("Convert error = %v, want ErrUnsupportedType", err)
	}
}

func TestRoundTrip(t *testing.T) {
	day := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		typ Type
		v   any
	}{
		{Of(Int), 0},
		{Of(Int), 42},
		{Of(Int), -17},
		{Of(Int64), int64(1) << 40},
		{Of(Float), 0.1},
		{Of(Bool), true},
		{Of(Bool), false},
		{Of(Char), 'z'},
		{Of(String), "hello world"},
		{EnumOf("Red", "Green"), "Green"},
		{Of(Date), day},
		{NullableOf(Of(Int)), 3},
		{Of(StringArray), []string{"x", "y"}},
		{Of(IntArray), []int{4, 5, 6}},
	}
	for _, tt := range tests {
		s := Format(tt.v)
		got, err := Convert(s, tt.typ)
		if err != nil {
			t.Errorf("Convert(Format(%v)) error: %v", tt.v, err)
			continue
		}
		if diff := cmp.Diff(tt.v, got); diff != "" {
			t.Errorf("round trip of %v through %q mismatch (-want +got):\n%s", tt.v, s, diff)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		r    *big.Rat
		want string
	}{
		{big.NewRat(10, 1), "10"},
		{big.NewRat(3, 2), "1.5"},
		{big.NewRat(1, 3), "1/3"},
	}
	for _, tt := range tests {
		if got := Format(tt.r); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.r.RatString(), got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	strs := []string{"a", "b"}
	Clone(strs).([]string)[0] = "x"
	if strs[0] != "a" {
		t.Errorf("Clone([]string) shares memory with its input")
	}
	ints := []int{1, 2}
	Clone(ints).([]int)[0] = 9
	if ints[0] != 1 {
		t.Errorf("Clone([]int) shares memory with its input")
	}
	r := big.NewRat(3, 2)
	c := Clone(r).(*big.Rat)
	c.SetInt64(7)
	if r.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("Clone(*big.Rat) shares memory with its input")
	}
	if got := Clone([]string(nil)); got.([]string) != nil {
		t.Errorf("Clone(nil slice) = %#v, want nil", got)
	}
	if got := Clone(5); got != 5 {
		t.Errorf("Clone(5) = %v, want 5", got)
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		v    any
		want bool
	}{
		{"int to int", Of(Int), 1, true},
		{"string to int", Of(Int), "1234567890", false},
		{"int to string", Of(String), 10, false},
		{"nil to string", Of(String), nil, true},
		{"nil to int", Of(Int), nil, false},
		{"nil to nullable", NullableOf(Of(Int)), nil, true},
		{"int to nullable int", NullableOf(Of(Int)), 5, true},
		{"int64 to int", Of(Int), int64(1), false},
		{"rune to char", Of(Char), 'x', true},
		{"enum member", EnumOf("A", "B"), "B", true},
		{"enum non-member", EnumOf("A", "B"), "b", false},
		{"date", Of(Date), time.Time{}, true},
		{"nil decimal", Of(Decimal), (*big.Rat)(nil), false},
		{"ints to int array", Of(IntArray), []int{1}, true},
		{"strings to int array", Of(IntArray), []string{"1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assignable(tt.typ, tt.v); got != tt.want {
				t.Errorf("Assignable(%s, %#v) = %v, want %v", tt.typ, tt.v, got, tt.want)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		typ     Type
		want    string
		wantErr bool
	}{
		{Of(Int), "number", false},
		{Of(Int64), "number", false},
		{Of(String), "value", false},
		{Of(IntArray), "number[+number]", false},
		{Of(StringArray), "value[+value]", false},
		{Of(Date), "dd-mm-yyyy", false},
		{Of(Float), "", true},
		{EnumOf("A"), "", true},
	}
	for _, tt := range tests {
		got, err := Hint(tt.typ)
		if (err != nil) != tt.wantErr {
			t.Errorf("Hint(%s) error = %v, wantErr %v", tt.typ, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Hint(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		members []string
		want    Type
		wantErr bool
	}{
		{in: "int", want: Of(Int)},
		{in: "Integer", want: Of(Int)},
		{in: "long", want: Of(Int64)},
		{in: "double", want: Of(Float)},
		{in: "decimal", want: Of(Decimal)},
		{in: "", want: Of(String)},
		{in: "boolean", want: Of(Bool)},
		{in: "char", want: Of(Char)},
		{in: "date", want: Of(Date)},
		{in: "string[]", want: Of(StringArray)},
		{in: "int[]", want: Of(IntArray)},
		{in: "int?", want: NullableOf(Of(Int))},
		{in: "enum", members: []string{"a", "b"}, want: EnumOf("a", "b")},
		{in: "enum?", members: []string{"a"}, want: NullableOf(EnumOf("a"))},
		{in: "enum", wantErr: true},
		{in: "string?", wantErr: true},
		{in: "map", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in, tt.members...)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseType(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestIsDate(t *testing.T) {
	if !IsDate("31-12-1999") {
		t.Errorf("IsDate(%q) = false, want true", "31-12-1999")
	}
	if IsDate("12-31-1999") {
		t.Errorf("IsDate(%q) = true, want false", "12-31-1999")
	}
}
