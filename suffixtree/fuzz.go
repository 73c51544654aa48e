// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

// This file exists to expose a fuzzing entry point that cross-checks the
// built tree against the raw input.

package suffixtree

import "bytes"

// Fuzz builds a tree over data and verifies suffix completeness and
// position validity. The reserved terminator bytes are remapped first,
// since indexed input must not contain them.
func Fuzz(data []byte) int {
	buf := make([]byte, len(data))
	for i, c := range data {
		if c < 0x02 {
			c += 0x02
		}
		buf[i] = c
	}

	t, err := BuildBytes(buf)
	if err != nil {
		panic(err)
	}
	t.verify()
	for i := range buf {
		if !t.ContainsBytes(buf[i:]) {
			panic("missing suffix")
		}
	}
	if len(buf) > 0 {
		p := buf[len(buf)/2:]
		for _, pos := range t.FindAllOccurrencesBytes(p) {
			if !bytes.HasPrefix(buf[pos:], p) {
				panic("invalid occurrence position")
			}
		}
	}
	return 1
}
