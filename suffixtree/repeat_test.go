// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import "testing"

func TestLongestRepeatedSubstring(t *testing.T) {
	var vectors = []struct {
		text string // The indexed text
		lrs  string // Expected longest repeated substring
	}{
		{"banana", "ana"},
		{"mississippi", "issi"},
		{"xabxac", "xa"},
		{"aaaa", "aaa"},
		{"abab", "ab"},
		{"abcdef", ""}, // all symbols distinct
		{"a", ""},
		{"", ""},
		{"abcabxabcd", "abc"},
		// Ties on length resolve to the lexicographically least
		// candidate, deterministically.
		{"aabb", "a"},
		{"banana banana", "banana"},
	}

	for i, v := range vectors {
		tree := Build(v.text)
		if got := tree.LongestRepeatedSubstring(); got != v.lrs {
			t.Errorf("test %d, LongestRepeatedSubstring(%q): got %q, want %q", i, v.text, got, v.lrs)
		}
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	var vectors = []struct {
		text  string // The indexed text
		other string // The second text
		lcs   string // Expected longest common substring
	}{
		{"banana", "panama", "ana"},
		{"abc", "xyz", ""}, // disjoint alphabets
		{"abcdef", "cde", "cde"},
		{"cde", "abcdef", "cde"},
		{"banana", "banana", "banana"},
		{"xabxac", "abcabxabcd", "abxa"},
		{"", "abc", ""},
		{"abc", "", ""},
		{"aaa", "aa", "aa"},
		// Ties on length resolve to the lexicographically least
		// candidate, deterministically.
		{"ab", "ba", "a"},
	}

	for i, v := range vectors {
		tree := Build(v.text)
		if got := tree.LongestCommonSubstring(v.other); got != v.lcs {
			t.Errorf("test %d, LongestCommonSubstring(%q, %q): got %q, want %q", i, v.text, v.other, got, v.lcs)
		}
	}
}
