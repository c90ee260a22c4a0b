package game

import (
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/logger"
	"github.com/Faultbox/ripple/internal/sim"
)

// pollConfig applies at most one pending config reload without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Updates():
		g.cfg = applyReload(g.log, g.sim, &g.lights, g.cfg, cfg)
	case err := <-g.watcher.Errors():
		g.log.Warn("config reload failed, keeping current settings", zap.Error(err))
	default:
	}
}

// applyReload pushes the live-tunable parts of next into the running
// viewer and returns the config to keep. Settings that need a restart
// (window size, initial grid size, logic rate) are only logged.
func applyReload(log *zap.Logger, s *sim.Simulation, lights *lighting.Rig, cur, next *config.Config) *config.Config {
	if err := s.ApplyParams(next.Water.Params()); err != nil {
		log.Warn("rejected reloaded water params", zap.Error(err))
		return cur
	}

	if next.Logging.Level != cur.Logging.Level {
		if err := logger.SetLevel(next.Logging.Level); err != nil {
			log.Warn("rejected reloaded log level", zap.Error(err))
		} else {
			log.Info("log level changed", zap.String("level", next.Logging.Level))
		}
	}

	if next.Render.SunLongitude != cur.Render.SunLongitude || next.Render.SunLatitude != cur.Render.SunLatitude {
		lights.SunDir = lighting.SunDirection(next.Render.SunLongitude, next.Render.SunLatitude)
	}

	if next.Window != cur.Window || next.Logic != cur.Logic || next.Water.InitialSize != cur.Water.InitialSize {
		log.Info("some reloaded settings take effect after restart")
	}
	return next
}
