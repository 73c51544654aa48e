// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_std_lib
// +build !no_std_lib

package benchmark

import (
	"index/suffixarray"
	"strings"
)

func init() {
	registerIndex("sa", func(text string) Index {
		return &saIndex{text, suffixarray.New([]byte(text))}
	})
	registerIndex("naive", func(text string) Index {
		return naiveIndex(text)
	})
}

// saIndex adapts index/suffixarray from the standard library.
type saIndex struct {
	text string
	sa   *suffixarray.Index
}

func (x *saIndex) Contains(pattern string) bool {
	if len(pattern) == 0 {
		return true
	}
	return len(x.sa.Lookup([]byte(pattern), 1)) > 0
}

func (x *saIndex) CountOccurrences(pattern string) int {
	if len(pattern) == 0 {
		return len(x.text)
	}
	return len(x.sa.Lookup([]byte(pattern), -1))
}

func (x *saIndex) FindAllOccurrences(pattern string) []int {
	if len(pattern) == 0 {
		pos := make([]int, len(x.text))
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	return x.sa.Lookup([]byte(pattern), -1)
}

// naiveIndex scans the text for every query. It is the correctness
// reference for the agreement tests and the baseline for benchmarks.
type naiveIndex string

func (x naiveIndex) Contains(pattern string) bool {
	return strings.Contains(string(x), pattern)
}

func (x naiveIndex) CountOccurrences(pattern string) int {
	return len(x.FindAllOccurrences(pattern))
}

func (x naiveIndex) FindAllOccurrences(pattern string) []int {
	if len(pattern) == 0 {
		pos := make([]int, len(x))
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	var pos []int
	// Overlapping occurrences count, so advance one symbol at a time.
	for i := 0; ; i++ {
		j := strings.Index(string(x)[i:], pattern)
		if j < 0 {
			return pos
		}
		i += j
		pos = append(pos, i)
	}
}
