// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates words.txt (check in compressed as words.txt.gz). A corpus of
// space-separated words over a large alphabet with natural repetition,
// complementing the nucleotide corpus. Uses the same explicit LCG as
// dna.go for reproducibility.
package main

import (
	"os"
	"strings"
)

const (
	name = "words.txt"
	size = 1 << 17
)

var words = strings.Fields(`
	the quick brown fox jumps over a lazy dog while seven wizards
	quietly mix vexing potions from jugs of black quartz and every
	sphinx judges my vow with zeal under pale morning light`)

func main() {
	var b []byte
	x := uint64(1)
	next := func(n int) int {
		x = x*6364136223846793005 + 1442695040888963407
		return int((x >> 33) % uint64(n))
	}

	col := 0
	for len(b) < size {
		w := words[next(len(words))]
		b = append(b, w...)
		col++
		if col%12 == 0 {
			b = append(b, '\n')
		} else {
			b = append(b, ' ')
		}
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
