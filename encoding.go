package kvstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// EncodingMode selects the textual form of a snapshot.
type EncodingMode int

const (
	// ModePretty writes an indented object with non-ASCII characters left
	// as raw UTF-8. Used for display.
	ModePretty EncodingMode = iota

	// ModeCompact writes a single line with non-ASCII runes escaped as
	// \uXXXX (surrogate pairs beyond the BMP). Used for persistence.
	ModeCompact
)

const indentStep = "  "

// Marshal renders the store's entry table as a JSON object whose values
// are strings or arrays of strings. Keys are written in SortedKeys order,
// so the output is deterministic.
func Marshal(s *Store, mode EncodingMode) []byte {
	escape := mode == ModeCompact
	keys := s.SortedKeys()
	if len(keys) == 0 {
		return []byte("{}")
	}

	var buf []byte
	buf = append(buf, '{')
	for i, key := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		if mode == ModePretty {
			buf = append(buf, '\n')
			buf = append(buf, indentStep...)
		}
		buf = appendTextEntry(buf, key, s.table[key], escape)
	}
	if mode == ModePretty {
		buf = append(buf, '\n')
	}
	buf = append(buf, '}')
	return buf
}

// Unmarshal parses a snapshot produced by Marshal (either mode) into a
// fresh, clean store. Anything but a flat JSON object of strings and
// non-empty string arrays fails with an error wrapping ErrSnapshotInvalid.
func Unmarshal(data []byte) (*Store, error) {
	table, err := parseTable(data)
	if err != nil {
		return nil, err
	}
	s := New(Options{})
	s.adoptTable(table)
	return s, nil
}

// adoptTable installs a parsed table and recomputes the derived counters.
// The store is left clean: a freshly parsed snapshot matches its source.
func (s *Store) adoptTable(table map[string]Value) {
	s.table = table
	s.keyCount = len(table)
	s.rescanDepth()
	s.dirty = false
}

func parseTable(data []byte) (map[string]Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("kvstore: %w: not an object", ErrSnapshotInvalid)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("kvstore: %w: %v", ErrSnapshotInvalid, err)
	}

	table := make(map[string]Value, len(raw))
	for key, rawValue := range raw {
		if key == "" {
			return nil, fmt.Errorf("kvstore: %w: empty key", ErrSnapshotInvalid)
		}
		v, err := parseValue(rawValue)
		if err != nil {
			return nil, fmt.Errorf("kvstore: %w: key %q: %v", ErrSnapshotInvalid, key, err)
		}
		table[key] = v
	}
	return table, nil
}

func parseValue(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty value")
	}
	switch raw[0] {
	case '"':
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		return Single(str), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("empty list")
		}
		list := make(Multi, len(items))
		for i, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '"' {
				return nil, fmt.Errorf("element %d is not a string", i)
			}
			if err := json.Unmarshal(item, &list[i]); err != nil {
				return nil, err
			}
		}
		return list, nil
	default:
		return nil, fmt.Errorf("value is not a string or array of strings")
	}
}

// appendTextEntry appends `"key":value` (compact, no spaces).
func appendTextEntry(buf []byte, key string, v Value, escape bool) []byte {
	buf = appendTextString(buf, key, escape)
	buf = append(buf, ':')
	switch v := v.(type) {
	case Single:
		buf = appendTextString(buf, string(v), escape)
	case Multi:
		buf = appendTextList(buf, v, escape)
	}
	return buf
}

func appendTextList(buf []byte, list []string, escape bool) []byte {
	buf = append(buf, '[')
	for i, item := range list {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendTextString(buf, item, escape)
	}
	return append(buf, ']')
}

const hexDigits = "0123456789abcdef"

// appendTextString appends s as a quoted JSON string. Quotes, backslashes
// and control characters are always escaped; with escape == true non-ASCII
// runes become \uXXXX sequences as well.
func appendTextString(buf []byte, s string, escape bool) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			buf = append(buf, '\\', '"')
			i++
		case c == '\\':
			buf = append(buf, '\\', '\\')
			i++
		case c < 0x20:
			switch c {
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\f':
				buf = append(buf, '\\', 'f')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			default:
				buf = appendEscapedRune(buf, rune(c))
			}
			i++
		case c < 0x80 || !escape:
			buf = append(buf, c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r <= 0xFFFF {
				buf = appendEscapedRune(buf, r)
			} else {
				r -= 0x10000
				buf = appendEscapedRune(buf, 0xD800+(r>>10))
				buf = appendEscapedRune(buf, 0xDC00+(r&0x3FF))
			}
			i += size
		}
	}
	return append(buf, '"')
}

func appendEscapedRune(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigits[(r>>12)&0xF], hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF], hexDigits[r&0xF])
}
