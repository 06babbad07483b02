// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coerce

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Format returns the token form of v, such that Convert(Format(v), t)
// yields v again for a value v of type t.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *big.Rat:
		if v == nil {
			return ""
		}
		if n, exact := v.FloatPrec(); exact {
			return v.FloatString(n)
		}
		return v.RatString()
	case bool:
		return strconv.FormatBool(v)
	case rune:
		return string(v)
	case time.Time:
		return v.Format(DateLayout)
	case []string:
		return strings.Join(v, ArraySeparator)
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ArraySeparator)
	}
	return fmt.Sprint(v)
}

// Clone returns a copy of v that shares no memory with it. Values of
// the immutable kinds are returned as is.
func Clone(v any) any {
	switch v := v.(type) {
	case []string:
		return slices.Clone(v)
	case []int:
		return slices.Clone(v)
	case *big.Rat:
		if v == nil {
			return v
		}
		return new(big.Rat).Set(v)
	}
	return v
}

// Assignable reports whether v can be used as a value of type t without
// conversion. nil is assignable only to types that can hold it.
func Assignable(t Type, v any) bool {
	if v == nil {
		return t.CanBeNil()
	}
	switch t.Kind {
	case Int:
		_, ok := v.(int)
		return ok
	case Int64:
		_, ok := v.(int64)
		return ok
	case Float:
		_, ok := v.(float64)
		return ok
	case Decimal:
		r, ok := v.(*big.Rat)
		return ok && r != nil
	case String:
		_, ok := v.(string)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case Char:
		_, ok := v.(rune)
		return ok
	case Date:
		_, ok := v.(time.Time)
		return ok
	case Enum:
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, m := range t.Members {
			if m == s {
				return true
			}
		}
		return false
	case Nullable:
		if !nullableElems[t.Elem] {
			return false
		}
		return Assignable(t.Underlying(), v)
	case StringArray:
		_, ok := v.([]string)
		return ok
	case IntArray:
		_, ok := v.([]int)
		return ok
	}
	return false
}

// Hint returns the placeholder shown for a value of type t in usage
// lines. Only the types listed here have a hint.
func Hint(t Type) (string, error) {
	switch t.Kind {
	case Int, Int64:
		return "number", nil
	case String:
		return "value", nil
	case IntArray:
		return "number[+number]", nil
	case StringArray:
		return "value[+value]", nil
	case Date:
		return DateLayoutHint, nil
	}
	return "", fmt.Errorf("%w: no usage hint for %s", ErrUnsupportedType, t)
}

// DateLayoutHint is DateLayout as shown to users.
const DateLayoutHint = "dd-mm-yyyy"
