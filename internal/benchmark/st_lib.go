// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package benchmark

import "github.com/seqlab/textindex/suffixtree"

func init() {
	registerIndex("st", func(text string) Index {
		return suffixtree.Build(text)
	})
}
