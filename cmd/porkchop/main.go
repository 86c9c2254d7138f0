// Command porkchop sweeps a departure-epoch x time-of-flight grid through
// the Lambert solver and renders the resulting delta-v as a heatmap image.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/stellarsoft/lambert"
)

const (
	defaultScenario = "~~unset~~"
	dtFormat        = "2006-01-02 15:04:05"
)

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML describing the grid to sweep")
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

	mu := viper.GetFloat64("problem.mu")
	r1 := readVec3("problem.r1")
	r2 := readVec3("problem.r2")
	prefix := viper.GetString("general.fileprefix")
	verbose := viper.GetBool("general.verbose")

	initLaunch := readEpoch("departure.from")
	maxLaunch := readEpoch("departure.until")
	minTOF := viper.GetFloat64("arrival.min_tof_hours") * 3600
	maxTOF := viper.GetFloat64("arrival.max_tof_hours") * 3600
	launchSteps := viper.GetInt("departure.steps")
	tofSteps := viper.GetInt("arrival.steps")
	if launchSteps <= 0 || tofSteps <= 0 {
		log.Fatal("departure.steps and arrival.steps must both be positive")
	}

	grid, minDV, maxDV := pcpGenerator(mu, r1, r2, initLaunch, maxLaunch, minTOF, maxTOF, launchSteps, tofSteps, verbose)

	if err := renderHeatmap(grid, launchSteps, tofSteps, fmt.Sprintf("%s.png", prefix)); err != nil {
		log.Fatalf("could not render heatmap: %s", err)
	}
	fmt.Printf("wrote %s.png; delta-v range [%.4f, %.4f] km/s\n", prefix, minDV, maxDV)
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

func readEpoch(key string) time.Time {
	if jd := viper.GetFloat64(key); jd != 0 {
		return julian.JDToTime(jd)
	}
	dt, err := time.Parse(dtFormat, viper.GetString(key))
	if err != nil {
		log.Fatalf("could not parse date time in `%s`: %s", key, err)
	}
	return dt
}

// pcpGenerator sweeps launchSteps departure epochs against tofSteps times
// of flight, solving the Lambert problem at every cell and recording the
// combined departure+arrival delta-v in km/s. Every cell is solved for M=0.
// Infeasible cells (invalid input, undefined plane, or non-convergence) are
// marked with math.NaN().
func pcpGenerator(mu float64, r1, r2 lambert.Vector3, initLaunch, maxLaunch time.Time, minTOF, maxTOF float64, launchSteps, tofSteps int, verbose bool) (grid []float64, minDV, maxDV float64) {
	grid = make([]float64, launchSteps*tofSteps)
	minDV, maxDV = math.Inf(1), math.Inf(-1)

	launchWindow := maxLaunch.Sub(initLaunch).Seconds()
	tofStep := (maxTOF - minTOF) / float64(tofSteps-1)
	if tofSteps == 1 {
		tofStep = 0
	}
	launchStep := launchWindow / float64(launchSteps-1)
	if launchSteps == 1 {
		launchStep = 0
	}

	for i := 0; i < launchSteps; i++ {
		launchDT := initLaunch.Add(time.Duration(float64(i)*launchStep) * time.Second)
		for j := 0; j < tofSteps; j++ {
			tof := minTOF + float64(j)*tofStep
			idx := i*tofSteps + j

			out, err := lambert.Solve(lambert.Input{Mu: mu, R1: r1, R2: r2, TOF: tof, Prograde: true})
			if err != nil || !out.Converged {
				if verbose {
					fmt.Printf("departure %s, tof %.0fs: infeasible (%v)\n", launchDT, tof, err)
				}
				grid[idx] = math.NaN()
				continue
			}
			dv := vecNorm(out.V1) + vecNorm(out.V2)
			grid[idx] = dv
			if dv < minDV {
				minDV = dv
			}
			if dv > maxDV {
				maxDV = dv
			}
		}
	}
	return grid, minDV, maxDV
}

func vecNorm(v lambert.Vector3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// gridXYZ adapts the flat launch x TOF delta-v grid to plotter.GridXYZ.
type gridXYZ struct {
	data                  []float64
	launchSteps, tofSteps int
}

func (g gridXYZ) Dims() (c, r int)   { return g.launchSteps, g.tofSteps }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }
func (g gridXYZ) Z(c, r int) float64 { return g.data[c*g.tofSteps+r] }

func renderHeatmap(grid []float64, launchSteps, tofSteps int, filename string) error {
	p := plot.New()
	p.Title.Text = "Lambert transfer delta-v"
	p.X.Label.Text = "departure step"
	p.Y.Label.Text = "time-of-flight step"

	h := plotter.NewHeatMap(gridXYZ{data: grid, launchSteps: launchSteps, tofSteps: tofSteps}, moreland.SmoothBlueRed().Palette(256))
	p.Add(h)

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
