// Command lambertcli solves a single Lambert boundary-value problem, or
// benchmarks the batch API, from the command line or a TOML scenario file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/spf13/viper"

	"github.com/stellarsoft/lambert"
)

const defaultScenario = "~~unset~~"

var (
	scenario  string
	benchmark int
	verbose   bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML describing one Lambert problem")
	flag.IntVar(&benchmark, "benchmark", 0, "if >0, run this many copies of the scenario through Batch and report solves/s instead of solving once")
	flag.BoolVar(&verbose, "verbose", false, "print iteration counts and convergence flags")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no -scenario provided")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml not found: %s", scenario, err)
	}

	in := lambert.Input{
		Mu:       viper.GetFloat64("problem.mu"),
		R1:       readVec3("problem.r1"),
		R2:       readVec3("problem.r2"),
		TOF:      viper.GetFloat64("problem.tof"),
		M:        viper.GetInt("problem.m"),
		Prograde: viper.GetBool("problem.prograde"),
		LowPath:  viper.GetBool("problem.low_path"),
	}

	if benchmark > 0 {
		runBenchmark(in, benchmark)
		return
	}

	out, err := lambert.Solve(in)
	if err != nil {
		log.Fatalf("solve failed: %s", err)
	}
	fmt.Printf("v1 = %+.6f km/s\nv2 = %+.6f km/s\n", out.V1, out.V2)
	if verbose {
		fmt.Printf("converged=%v iterations=%d\n", out.Converged, out.Iterations)
	}

	if viper.GetInt("problem.max_rev") > 0 {
		branches := lambert.MultiRev(in.Mu, in.R1, in.R2, in.TOF, viper.GetInt("problem.max_rev"), in.Prograde)
		fmt.Printf("multi-rev: %d branch(es) converged\n", len(branches))
		for _, b := range branches {
			low := "n/a"
			if b.LowPath != nil {
				low = fmt.Sprintf("%v", *b.LowPath)
			}
			fmt.Printf("  M=%d low=%s v1=%+.6f\n", b.M, low, b.V1)
		}
	}
}

// readVec3 reads a vector as three scalar keys (key.x, key.y, key.z) rather
// than a TOML array, since viper has no float64-slice getter.
func readVec3(key string) lambert.Vector3 {
	return lambert.Vector3{
		viper.GetFloat64(key + ".x"),
		viper.GetFloat64(key + ".y"),
		viper.GetFloat64(key + ".z"),
	}
}

// runBenchmark packs n copies of in into the flat-buffer batch API and
// reports the achieved throughput against the >=50,000 solves/s property.
func runBenchmark(in lambert.Input, n int) {
	problems := make([]float64, 0, n*8)
	for i := 0; i < n; i++ {
		problems = append(problems, in.Mu, in.R1[0], in.R1[1], in.R1[2], in.R2[0], in.R2[1], in.R2[2], in.TOF)
	}
	results := make([]float64, n*6)

	start := time.Now()
	ok, err := lambert.Batch(problems, results, lambert.BatchOptions{M: in.M, Prograde: in.Prograde, LowPath: in.LowPath})
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("batch failed: %s", err)
	}

	rate := float64(n) / elapsed.Seconds()
	fmt.Printf("%d problems, %d converged, %s elapsed, %.0f solves/s\n", n, ok, elapsed, rate)
	if math.IsNaN(rate) {
		log.Fatal("benchmark produced a non-finite rate, check -benchmark count")
	}
}
