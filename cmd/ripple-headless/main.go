// Command ripple-headless runs the water simulation without a window: it
// applies scripted pokes, advances a fixed number of ticks and logs how the
// surface evolves.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/sim"
)

var (
	flagTicks    = flag.Int("ticks", 400, "Number of simulation ticks to run")
	flagPoke     = flag.String("poke", "", "Comma-separated column indices to raise before running; prefix with - to lower (e.g. 210,-45)")
	flagRepeat   = flag.Int("repeat", 5, "How many times each poke is applied")
	flagInterval = flag.Int("report", 80, "Log stats every N ticks (0 disables)")
	flagJSON     = flag.Bool("json", false, "Log as JSON")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	err = logger.InitWithOptions(logger.Options{
		Level:   cfg.Logging.Level,
		File:    fileConfig(cfg.Logging.LogFile),
		Console: true,
		JSON:    *flagJSON,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	pokes, err := parsePokes(*flagPoke)
	if err != nil {
		logger.Fatal("invalid -poke", zap.Error(err))
	}

	if err := run(cfg, pokes, *flagRepeat, *flagTicks, *flagInterval); err != nil {
		logger.Error("headless run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func fileConfig(path string) logger.FileConfig {
	if path == "" {
		return logger.FileConfig{}
	}
	return logger.DefaultFileConfig(path)
}

// poke is one scripted edit.
type poke struct {
	index int
	raise bool
}

// parsePokes reads "12,-7,40" into raise 12, lower 7, raise 40.
func parsePokes(s string) ([]poke, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []poke
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		raise := !strings.HasPrefix(field, "-")
		n, err := strconv.Atoi(strings.TrimPrefix(field, "-"))
		if err != nil {
			return nil, fmt.Errorf("poke %q: %w", field, err)
		}
		out = append(out, poke{index: n, raise: raise})
	}
	return out, nil
}

func run(cfg *config.Config, pokes []poke, repeat, ticks, report int) error {
	s, err := sim.New(sim.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer s.Close()

	center := s.Grid().Len() / 2
	if len(pokes) == 0 {
		pokes = []poke{{index: center + s.Grid().SideLength()/2, raise: true}}
	}
	for _, p := range pokes {
		for range repeat {
			if !s.Pick(p.index, p.raise) {
				logger.Warn("poke outside the grid", zap.Int("index", p.index), zap.Int("columns", s.Grid().Len()))
				break
			}
		}
	}

	logStats("start", s.Stats())
	for tick := 1; tick <= ticks; tick++ {
		s.Step()
		if report > 0 && tick%report == 0 {
			logStats("tick", s.Stats())
		}
	}
	logStats("done", s.Stats())
	return nil
}

func logStats(msg string, st sim.Stats) {
	logger.Info(msg,
		zap.Uint64("ticks", st.Ticks),
		zap.Int("side", st.Side),
		zap.Float64("energy", st.Energy),
		zap.Float64("min_height", st.MinHeight),
		zap.Float64("max_height", st.MaxHeight),
	)
}
