// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark compares the performance of various substring-index
// implementations with respect to build speed and query speed.
package benchmark

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/seqlab/textindex/internal/testutil"
	"github.com/ulikunitz/xz"
)

const (
	TestBuildRate = iota
	TestContainsRate
	TestLocateRate
)

// Index is the query surface shared by every registered implementation.
type Index interface {
	Contains(pattern string) bool
	CountOccurrences(pattern string) int
	FindAllOccurrences(pattern string) []int
}

// Builder constructs an index over text.
type Builder func(text string) Index

var Indexes map[string]Builder

func registerIndex(name string, b Builder) {
	if Indexes == nil {
		Indexes = make(map[string]Builder)
	}
	Indexes[name] = b
}

// LoadFile loads the first n bytes of the input file, decompressing .gz
// and .xz transparently. If the file is smaller than n, the input is
// replicated until it matches n, with each copy XORed by a rolling mask.
func LoadFile(file string, n int) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(file) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, err
		}
		r = xr
	}

	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, io.ErrNoProgress
	}
	return testutil.ResizeData(input, n), nil
}

// Result is a single benchmark result.
type Result struct {
	R float64 // Primary metric: MB/s for builds, queries/s otherwise
	D float64 // Delta relative to the first index in the row
}

// samplePatterns draws deterministic substrings of data to query for.
// Half of the patterns are mutated in one position so that misses are
// exercised too.
func samplePatterns(data []byte, cnt, length int) []string {
	rand := testutil.NewRand(len(data))
	ps := make([]string, cnt)
	for i := range ps {
		if length >= len(data) {
			ps[i] = string(data)
			continue
		}
		p := []byte(string(data[rand.Intn(len(data)-length):][:length]))
		if i%2 == 1 {
			p[rand.Intn(len(p))] ^= 0xff
		}
		ps[i] = string(p)
	}
	return ps
}

// BenchmarkSuite measures the given test for every (file, size) pair
// across the named indexes. It returns one row of results per pair along
// with the row labels, and calls tick after each measurement.
func BenchmarkSuite(test int, names, files []string, sizes []int, tick func()) ([][]Result, []string) {
	var results [][]Result
	var labels []string
	for _, f := range files {
		for _, n := range sizes {
			data, err := LoadFile(f, n)
			if err != nil {
				continue
			}
			text := string(data)
			patterns := samplePatterns(data, 64, 16)

			row := make([]Result, len(names))
			for i, name := range names {
				build, ok := Indexes[name]
				if !ok {
					continue
				}
				row[i].R = measure(test, build, text, patterns)
				if tick != nil {
					tick()
				}
			}
			for i := range row {
				if row[0].R > 0 {
					row[i].D = row[i].R / row[0].R
				}
			}
			results = append(results, row)
			labels = append(labels, label(f, n))
		}
	}
	return results, labels
}

func measure(test int, build Builder, text string, patterns []string) float64 {
	switch test {
	case TestBuildRate:
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				build(text)
			}
		})
		return float64(len(text)) * float64(r.N) / r.T.Seconds() / 1e6
	case TestContainsRate:
		idx := build(text)
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				idx.Contains(patterns[i%len(patterns)])
			}
		})
		return float64(r.N) / r.T.Seconds()
	case TestLocateRate:
		idx := build(text)
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				idx.FindAllOccurrences(patterns[i%len(patterns)])
			}
		})
		return float64(r.N) / r.T.Seconds()
	default:
		panic("unknown test")
	}
}

func label(file string, size int) string {
	base := filepath.Base(file)
	for _, ext := range []string{".gz", ".xz"} {
		if filepath.Ext(base) == ext {
			base = base[:len(base)-len(ext)]
		}
	}
	return base + ":" + sizeString(size)
}

func sizeString(n int) string {
	switch {
	case n >= 1e6 && n%1e6 == 0:
		return strconv.Itoa(n/1e6) + "e6"
	case n >= 1e3 && n%1e3 == 0:
		return strconv.Itoa(n/1e3) + "e3"
	default:
		return strconv.Itoa(n)
	}
}
