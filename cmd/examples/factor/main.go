// Package main demonstrates elliptic-curve factorization of small composites
package main

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/Caqil/lenstra-ecm/pkg/ecm"
	"github.com/Caqil/lenstra-ecm/pkg/logger"
)

func main() {
	fmt.Println("=== Lenstra ECM Example ===")

	zlog := logger.New(&logger.Config{Level: "info", Output: os.Stderr, Pretty: true})
	ctx := context.Background()

	// Step 1: reference search, one curve at a time
	fmt.Println("\nStep 1: Repeated addition on N = 455839")
	s, err := ecm.NewSearcher(&ecm.Config{
		Bound:    30,
		Trials:   10,
		Strategy: ecm.StrategyRepeatedAddition,
		Workers:  1,
	}, ecm.WithLogger(zlog))
	if err != nil {
		log.Fatalf("Failed to create searcher: %v", err)
	}
	report(ctx, s, big.NewInt(455839))

	// Step 2: prime-power scalar multiplication across several workers
	fmt.Println("\nStep 2: Scalar multiplication with 4 workers on N = 1000000016000000063")
	n, _ := new(big.Int).SetString("1000000016000000063", 10) // 1000000007 * 1000000009
	s, err = ecm.NewSearcher(&ecm.Config{
		Bound:    2000,
		Trials:   200,
		Strategy: ecm.StrategyScalarMult,
		Workers:  4,
	}, ecm.WithLogger(zlog))
	if err != nil {
		log.Fatalf("Failed to create searcher: %v", err)
	}
	report(ctx, s, n)

	// Step 3: a prime never degenerates informatively
	fmt.Println("\nStep 3: Prime N = 97")
	factor, found, err := ecm.Factor(big.NewInt(97), 5, 5)
	if err != nil {
		log.Fatalf("Factor failed: %v", err)
	}
	fmt.Printf("  found=%v factor=%v\n", found, factor)
}

func report(ctx context.Context, s *ecm.Searcher, n *big.Int) {
	res, found, err := s.Factor(ctx, n)
	if err != nil {
		log.Fatalf("Factor failed: %v", err)
	}
	if !found {
		fmt.Println("  ✗ No factor found, retry with a larger bound or more trials")
		return
	}
	fmt.Printf("  ✓ %s = %s * %s\n", n, res.Factor, res.Cofactor)
	fmt.Printf("    curve a = %s, trial %d of %d run\n", res.CurveParam, res.Trial, res.TrialsRun)
}
