// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates dna.txt (check in compressed as dna.txt.xz). A small-alphabet
// corpus of nucleotides with copied regions planted throughout, which
// forces heavy branching and long repeated substrings in index
// structures. Uses an explicit LCG so the output is reproducible
// independently of math/rand.
package main

import "os"

const (
	name = "dna.txt"
	size = 1 << 18
)

func main() {
	var b []byte
	x := uint64(1)
	next := func(n int) int {
		x = x*6364136223846793005 + 1442695040888963407
		return int((x >> 33) % uint64(n))
	}

	const bases = "ACGT"
	for len(b) < size {
		if len(b) > 256 && next(8) == 0 {
			// Copy a region from earlier to plant repeats.
			l := 16 + next(48)
			start := next(len(b) - l)
			b = append(b, b[start:start+l]...)
		} else {
			b = append(b, bases[next(4)])
		}
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
