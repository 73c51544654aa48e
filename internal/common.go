// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal holds helpers shared by the textindex packages.
//
// For performance reasons, the index packages skip defensive checks of
// their own invariants in normal builds; the debug build tag enables
// them through the Debug flag.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "textindex: " + string(e) }
