// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz
// +build !debug,!gofuzz

package internal

// Flags enabled by the debug and gofuzz build tags.
const (
	Debug  = false
	GoFuzz = false
)
