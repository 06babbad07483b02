// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actionfile

import (
	"math"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/yeetrun/argbind/pkg/coerce"
)

// normalizeDefault maps a decoded default onto the Go representation of
// t when that can be done without loss. Anything else is returned as is.
func normalizeDefault(t coerce.Type, v any) any {
	if v == nil {
		return nil
	}
	switch t.Kind {
	case coerce.Nullable:
		return normalizeDefault(t.Underlying(), v)
	case coerce.Int:
		if n, ok := asInt64(v); ok && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	case coerce.Int64:
		if n, ok := asInt64(v); ok {
			return n
		}
	case coerce.Float:
		switch n := v.(type) {
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	case coerce.Decimal:
		switch n := v.(type) {
		case int:
			return big.NewRat(int64(n), 1)
		case int64:
			return big.NewRat(n, 1)
		case float64:
			if r := new(big.Rat).SetFloat64(n); r != nil {
				return r
			}
		case string:
			if r, ok := new(big.Rat).SetString(n); ok {
				return r
			}
		}
	case coerce.Char:
		if s, ok := v.(string); ok && utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			return r
		}
	case coerce.Date:
		if d, ok := v.(time.Time); ok {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		}
	case coerce.StringArray:
		if items, ok := v.([]any); ok {
			out := make([]string, 0, len(items))
			for _, it := range items {
				s, ok := it.(string)
				if !ok {
					return v
				}
				out = append(out, s)
			}
			return out
		}
	case coerce.IntArray:
		if items, ok := v.([]any); ok {
			out := make([]int, 0, len(items))
			for _, it := range items {
				n, ok := asInt64(it)
				if !ok {
					return v
				}
				out = append(out, int(n))
			}
			return out
		}
	}
	return v
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}
