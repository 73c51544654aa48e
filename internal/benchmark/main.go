// Copyright 2024, The textindex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare performance between multiple substring-index
// implementations. Individual implementations are referred to as indexes.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests   buildRate,containsRate \
//		-indexes st,sa,naive            \
//		-files   dna.txt.xz             \
//		-sizes   1e4,1e5,1e6
//
//	BENCHMARK: buildRate
//		benchmark          st MB/s  delta      sa MB/s  delta
//		dna.txt:1e4           8.11  1.00x        12.93  1.59x
//		dna.txt:1e5           6.47  1.00x         9.82  1.52x
//		dna.txt:1e6           5.04  1.00x         7.91  1.57x
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/dsnet/golib/strconv"
	"github.com/seqlab/textindex/internal/benchmark"
)

const (
	defaultTests = "buildRate,containsRate,locateRate"
	defaultFiles = "../../testdata/dna.txt.xz,../../testdata/words.txt.gz"
	defaultSizes = "1e4,1e5,1e6"
)

var (
	testToEnum = map[string]int{
		"buildRate":    benchmark.TestBuildRate,
		"containsRate": benchmark.TestContainsRate,
		"locateRate":   benchmark.TestLocateRate,
	}
	enumToTest = map[int]string{
		benchmark.TestBuildRate:    "buildRate",
		benchmark.TestContainsRate: "containsRate",
		benchmark.TestLocateRate:   "locateRate",
	}
	testTitles = map[int]string{
		benchmark.TestBuildRate:    "MB/s",
		benchmark.TestContainsRate: "ops/s",
		benchmark.TestLocateRate:   "ops/s",
	}
)

func defaultIndexes() string {
	var s []string
	for k := range benchmark.Indexes {
		if k != "st" {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if _, ok := benchmark.Indexes["st"]; ok {
		s = append([]string{"st"}, s...) // Ensure "st" always appears first
	}
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests, "List of different benchmark tests")
	f1 := flag.String("files", defaultFiles, "List of input files to benchmark")
	f2 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	f3 := flag.String("indexes", defaultIndexes(), "List of indexes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var tests, sizes []int
	files := sep.Split(*f1, -1)
	names := sep.Split(*f3, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f2, -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid size")
		}
		sizes = append(sizes, int(nf))
	}

	for _, t := range tests {
		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])

		// Progress ticker.
		var cnt int
		total := len(names) * len(files) * len(sizes)
		tick := func() {
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		results, labels := benchmark.BenchmarkSuite(t, names, files, sizes, tick)
		printResults(results, labels, names, testTitles[t])
		fmt.Println()
	}
}

func printResults(results [][]benchmark.Result, labels, names []string, title string) {
	// Allocate result table.
	cells := make([][]string, 1+len(labels))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(names))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range names {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = labels[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = strconv.FormatPrefix(r.R, strconv.Base1024, 2)
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(names))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
