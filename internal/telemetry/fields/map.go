// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package fields

import "strconv"

// DimensionMap holds the custom dimensions of a single emission, keyed by
// registry member. Entry order is irrelevant on the wire.
type DimensionMap map[Dimension]string

// Entry is a dimension paired with a possibly-absent value. Build entries with
// the typed constructors below and collapse them with Compact.
type Entry struct {
	dim Dimension
	val string
	set bool
}

// String guards an optional string value: the entry is set only when v is
// non-nil.
func String(d Dimension, v *string) Entry {
	if v == nil {
		return Entry{dim: d}
	}
	return StringVal(d, *v)
}

// Bool guards an optional boolean value.
func Bool(d Dimension, v *bool) Entry {
	if v == nil {
		return Entry{dim: d}
	}
	return BoolVal(d, *v)
}

// Int guards an optional integer value.
func Int(d Dimension, v *int64) Entry {
	if v == nil {
		return Entry{dim: d}
	}
	return IntVal(d, *v)
}

// StringVal builds an always-present entry.
func StringVal(d Dimension, v string) Entry {
	return Entry{dim: d, val: v, set: true}
}

// BoolVal builds an always-present entry, formatted as "true" or "false".
func BoolVal(d Dimension, v bool) Entry {
	return Entry{dim: d, val: strconv.FormatBool(v), set: true}
}

// IntVal builds an always-present entry, formatted in base 10.
func IntVal(d Dimension, v int64) Entry {
	return Entry{dim: d, val: strconv.FormatInt(v, 10), set: true}
}

// Compact collapses entries into a DimensionMap, dropping every unset entry.
// An absent optional value therefore means "key omitted", never "key present
// with a placeholder". Returns nil when no entry is set.
func Compact(entries ...Entry) DimensionMap {
	var m DimensionMap
	for _, e := range entries {
		if !e.set {
			continue
		}
		if m == nil {
			m = make(DimensionMap, len(entries))
		}
		m[e.dim] = e.val
	}
	return m
}
