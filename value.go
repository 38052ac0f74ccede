package kvstore

import "slices"

// Value is the value of a single entry: either a Single string or a Multi
// ordered list of strings. No other implementations exist.
type Value interface {
	isValue()
}

// Single is a scalar entry value.
type Single string

// Multi is an ordered list entry value, length >= 1.
type Multi []string

func (Single) isValue() {}
func (Multi) isValue()  {}

// valueDepth returns the number of strings held by v: 1 for Single, the
// list length for Multi.
func valueDepth(v Value) int {
	switch v := v.(type) {
	case Single:
		return 1
	case Multi:
		return len(v)
	default:
		panic("kvstore: unknown value variant")
	}
}

func valueFirst(v Value) string {
	switch v := v.(type) {
	case Single:
		return string(v)
	case Multi:
		return v[0]
	default:
		panic("kvstore: unknown value variant")
	}
}

// valueStrings returns a copy of v's strings, never aliasing store memory.
func valueStrings(v Value) []string {
	switch v := v.(type) {
	case Single:
		return []string{string(v)}
	case Multi:
		return slices.Clone(v)
	default:
		panic("kvstore: unknown value variant")
	}
}

func cloneValue(v Value) Value {
	switch v := v.(type) {
	case Single:
		return v
	case Multi:
		return Multi(slices.Clone(v))
	default:
		panic("kvstore: unknown value variant")
	}
}
