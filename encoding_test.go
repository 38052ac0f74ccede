package kvstore

import (
	"errors"
	"strings"
	"testing"
)

func TestMarshal_Empty(t *testing.T) {
	s := testStore(t)
	deepEqual(t, string(Marshal(s, ModePretty)), "{}")
	deepEqual(t, string(Marshal(s, ModeCompact)), "{}")
}

func TestMarshal_Compact(t *testing.T) {
	s := testStore(t)
	s.Set("hello", "world")
	s.SetList("head", []string{"shoulders", "knees"})
	deepEqual(t, string(Marshal(s, ModeCompact)),
		`{"head":["shoulders","knees"],"hello":"world"}`)
}

func TestMarshal_Pretty(t *testing.T) {
	s := testStore(t)
	s.Set("a", "1")
	s.SetList("b", []string{"2", "3"})
	deepEqual(t, string(Marshal(s, ModePretty)),
		"{\n  \"a\":\"1\",\n  \"b\":[\"2\",\"3\"]\n}")
}

func TestMarshal_NonASCIIEscaping(t *testing.T) {
	s := testStore(t)
	s.Set("città", "über")

	compact := string(Marshal(s, ModeCompact))
	deepEqual(t, compact, `{"citt\u00e0":"\u00fcber"}`)

	pretty := string(Marshal(s, ModePretty))
	if !strings.Contains(pretty, "città") || !strings.Contains(pretty, "über") {
		t.Fatalf("pretty form should keep raw UTF-8, have %s", pretty)
	}
}

func TestMarshal_SurrogatePairs(t *testing.T) {
	s := testStore(t)
	s.Set("emoji", "\U0001F600")
	deepEqual(t, string(Marshal(s, ModeCompact)), `{"emoji":"\ud83d\ude00"}`)
}

func TestMarshal_ControlAndQuoteEscaping(t *testing.T) {
	s := testStore(t)
	s.Set("k", "a\"b\\c\nd\te")
	want := `{"k":"a\"b\\c\nd\te"}`
	deepEqual(t, string(Marshal(s, ModeCompact)), want)
	// control characters are escaped even in pretty mode
	deepEqual(t, string(Marshal(s, ModePretty)), "{\n  "+`"k":"a\"b\\c\nd\te"`+"\n}")
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)
	s.Set("hello", "wörld")
	s.SetList("head", []string{"shoulders", "knees", "and", "toes"})
	s.AppendList("single", []string{"only"}) // one-element list
	s.Set("empty", "")

	for _, mode := range []EncodingMode{ModePretty, ModeCompact} {
		back, err := Unmarshal(Marshal(s, mode))
		if err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		deepEqual(t, back.Count(), s.Count())
		deepEqual(t, back.MaxDepth(), s.MaxDepth())
		deepEqual(t, back.Dirty(), false)
		deepEqual(t, back.SortedKeys(), s.SortedKeys())
		for _, key := range s.Keys() {
			wantAll, _ := s.All(key)
			haveAll, _ := back.All(key)
			deepEqual(t, haveAll, wantAll)
			// the Single/Multi distinction survives the round trip
			wantText, _ := s.Get(key)
			haveText, _ := back.Get(key)
			deepEqual(t, haveText, wantText)
		}
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	inputs := []string{
		``,
		`null`,
		`42`,
		`"string"`,
		`["array"]`,
		`{"k":42}`,
		`{"k":true}`,
		`{"k":null}`,
		`{"k":{"nested":"object"}}`,
		`{"k":[1,2]}`,
		`{"k":["a",null]}`,
		`{"k":["a",["b"]]}`,
		`{"k":[]}`,
		`{"":"empty key"}`,
		`{"k":"v"`,
		`{"k":"v"} trailing`,
	}
	for _, input := range inputs {
		_, err := Unmarshal([]byte(input))
		if !errors.Is(err, ErrSnapshotInvalid) {
			t.Errorf("Unmarshal(%s): err = %v, wanted ErrSnapshotInvalid", input, err)
		}
	}
}

func TestUnmarshal_Valid(t *testing.T) {
	s, err := Unmarshal([]byte(`  {"a": "1", "b": ["2", "3"], "c": [""]}  `))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	deepEqual(t, s.Count(), 3)
	deepEqual(t, s.MaxDepth(), 2)
	deepEqual(t, s.Depth("c"), 1)
	all, _ := s.All("b")
	deepEqual(t, all, []string{"2", "3"})
}

func TestUnmarshal_EscapedInput(t *testing.T) {
	s, err := Unmarshal([]byte(`{"citt\u00e0":"\u00fcber"}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	v, found := s.Get("città")
	deepEqual(t, found, true)
	deepEqual(t, v, "über")
}
