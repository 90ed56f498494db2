package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenData represents a single factorial test case in the golden file
type GoldenData struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

func main() {
	outputDir := flag.String("out", "internal/bigint/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "factorial_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Interesting cases: edge values, the parallel-split threshold
	// neighborhood, and a few larger samples kept small enough for a
	// reasonable file size.
	targets := []uint64{
		0, 1, 2, 3, 4, 5, 10, 13, 20, 21, 50, 100,
		128, 256, 500, 512, 1000,
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, n := range targets {
		res := factorialBig(n)
		data = append(data, GoldenData{
			N:      n,
			Result: res.String(),
		})
		fmt.Printf("Generated %d!\n", n)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// factorialBig computes n! with math/big. This serves as our "Oracle"
// using the standard library.
func factorialBig(n uint64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}
