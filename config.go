package lambert

import (
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// solverConfig holds the package-wide iteration defaults. It is the
// library's only process-global state, and it is read-only after the first
// call to Config(); nothing here is touched by a solve.
type solverConfig struct {
	MaxIter int
	RTol    float64
}

var (
	cfgOnce sync.Once
	cfg     solverConfig
)

func defaultConfig() solverConfig {
	return solverConfig{MaxIter: defaultMaxIter, RTol: defaultRTol}
}

// Config returns the solver's default iteration cap and relative tolerance.
// Solve, Batch and MultiRev fall back to these whenever a caller leaves
// MaxIter/RTol at zero.
//
// Defaults may be overridden by a TOML file, located via an environment
// variable (LAMBERT_CONFIG) rather than a hardcoded path. A missing file or
// unset variable is not fatal: the core must stay usable as a plain library
// with no configuration step at all, so it keeps the built-in defaults (an
// unset variable silently, a missing file with one log line).
func Config() solverConfig {
	cfgOnce.Do(loadConfig)
	return cfg
}

func loadConfig() {
	cfg = defaultConfig()
	confDir := os.Getenv("LAMBERT_CONFIG")
	if confDir == "" {
		return
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confDir)
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("[lambert] %s/conf.toml not found, using built-in defaults", confDir)
		return
	}
	if v := viper.GetInt("solver.max_iterations"); v > 0 {
		cfg.MaxIter = v
	}
	if v := viper.GetFloat64("solver.tolerance"); v > 0 {
		cfg.RTol = v
	}
}
