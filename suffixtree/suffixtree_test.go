// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueries(t *testing.T) {
	var vectors = []struct {
		text     string // The indexed text
		pattern  string // The query pattern
		contains bool   // Expected Contains result
		count    int    // Expected CountOccurrences result
		pos      []int  // Expected FindAllOccurrences result, sorted
	}{{
		text:     "banana",
		pattern:  "ana",
		contains: true,
		count:    2,
		pos:      []int{1, 3},
	}, {
		text:     "banana",
		pattern:  "a",
		contains: true,
		count:    3,
		pos:      []int{1, 3, 5},
	}, {
		text:     "banana",
		pattern:  "banana",
		contains: true,
		count:    1,
		pos:      []int{0},
	}, {
		text:     "banana",
		pattern:  "bananas",
		contains: false,
		count:    0,
	}, {
		text:     "banana",
		pattern:  "nab",
		contains: false,
		count:    0,
	}, {
		text:     "mississippi",
		pattern:  "issi",
		contains: true,
		count:    2,
		pos:      []int{1, 4},
	}, {
		text:     "mississippi",
		pattern:  "i",
		contains: true,
		count:    4,
		pos:      []int{1, 4, 7, 10},
	}, {
		text:     "mississippi",
		pattern:  "ssippi",
		contains: true,
		count:    1,
		pos:      []int{5},
	}, {
		text:     "mississippi",
		pattern:  "sissy",
		contains: false,
		count:    0,
	}, {
		text:     "xabxac",
		pattern:  "xab",
		contains: true,
		count:    1,
		pos:      []int{0},
	}, {
		text:     "xabxac",
		pattern:  "xac",
		contains: true,
		count:    1,
		pos:      []int{3},
	}, {
		text:     "xabxac",
		pattern:  "xa",
		contains: true,
		count:    2,
		pos:      []int{0, 3},
	}, {
		text:     "aaaa",
		pattern:  "aa",
		contains: true,
		count:    3,
		pos:      []int{0, 1, 2},
	}, {
		text:     "abcabxabcd",
		pattern:  "abc",
		contains: true,
		count:    2,
		pos:      []int{0, 6},
	}, {
		text:     "a",
		pattern:  "a",
		contains: true,
		count:    1,
		pos:      []int{0},
	}, {
		text:     "",
		pattern:  "a",
		contains: false,
		count:    0,
	}}

	for i, v := range vectors {
		tree := Build(v.text)
		if got := tree.Contains(v.pattern); got != v.contains {
			t.Errorf("test %d, Contains(%q): got %v, want %v", i, v.pattern, got, v.contains)
		}
		if got := tree.CountOccurrences(v.pattern); got != v.count {
			t.Errorf("test %d, CountOccurrences(%q): got %d, want %d", i, v.pattern, got, v.count)
		}
		got := tree.FindAllOccurrences(v.pattern)
		sort.Ints(got)
		want := v.pos
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("test %d, FindAllOccurrences(%q) mismatch (-got +want):\n%s", i, v.pattern, diff)
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	tree := Build("banana")

	// The string call path treats the empty pattern as matching at
	// every position.
	if !tree.Contains("") {
		t.Errorf("Contains(\"\"): got false, want true")
	}
	if got, want := tree.CountOccurrences(""), 6; got != want {
		t.Errorf("CountOccurrences(\"\"): got %d, want %d", got, want)
	}
	if got, want := tree.FindAllOccurrences(""), []int{0, 1, 2, 3, 4, 5}; !cmp.Equal(got, want) {
		t.Errorf("FindAllOccurrences(\"\"): got %v, want %v", got, want)
	}

	// The byte call path treats the empty pattern as matching nowhere
	// for counting and enumeration. The asymmetry with the string path
	// is deliberate and must not be unified.
	if !tree.ContainsBytes([]byte{}) {
		t.Errorf("ContainsBytes(empty): got false, want true")
	}
	if got := tree.CountOccurrencesBytes([]byte{}); got != 0 {
		t.Errorf("CountOccurrencesBytes(empty): got %d, want 0", got)
	}
	if got := tree.FindAllOccurrencesBytes([]byte{}); got != nil {
		t.Errorf("FindAllOccurrencesBytes(empty): got %v, want nil", got)
	}
}

func TestNilPattern(t *testing.T) {
	tree := Build("banana")
	var funcs = []struct {
		name string
		call func([]byte)
	}{
		{"ContainsBytes", func(p []byte) { tree.ContainsBytes(p) }},
		{"CountOccurrencesBytes", func(p []byte) { tree.CountOccurrencesBytes(p) }},
		{"FindAllOccurrencesBytes", func(p []byte) { tree.FindAllOccurrencesBytes(p) }},
	}
	for _, f := range funcs {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(nil): expected panic", f.name)
				}
			}()
			f.call(nil)
		}()
	}
}

func TestEmptyText(t *testing.T) {
	tree := Build("")
	if got := tree.LeafCount(); got != 0 {
		t.Errorf("LeafCount: got %d, want 0", got)
	}
	if got := tree.NodeCount(); got != 1 {
		t.Errorf("NodeCount: got %d, want 1", got)
	}
	if !tree.Contains("") {
		t.Errorf("Contains(\"\"): got false, want true")
	}
	if tree.Contains("a") {
		t.Errorf("Contains(\"a\"): got true, want false")
	}
	if got := tree.FindAllOccurrences(""); len(got) != 0 {
		t.Errorf("FindAllOccurrences(\"\"): got %v, want empty", got)
	}
	if got := tree.LongestRepeatedSubstring(); got != "" {
		t.Errorf("LongestRepeatedSubstring: got %q, want \"\"", got)
	}
	if got := tree.EnumerateSuffixes(); len(got) != 0 {
		t.Errorf("EnumerateSuffixes: got %v, want empty", got)
	}

	// Empty builds share one degenerate singleton.
	if Build("") != tree {
		t.Errorf("Build(\"\") did not return the shared singleton")
	}
}
