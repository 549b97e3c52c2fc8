// Command tracker runs the multi-object tracking engine over a JSON frame
// stream, writing the labeled output JSON document and a per-frame
// diagnostic PNG visualization.
package main

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/levicriley/tracking-solution/config"
	"github.com/levicriley/tracking-solution/driver"
	"github.com/levicriley/tracking-solution/ingest"
	"github.com/levicriley/tracking-solution/mot"
	"github.com/levicriley/tracking-solution/visualize"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	if err := run(logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load(defaultsINIPath(), os.Args[1:])
	if err != nil {
		return err
	}
	logger.Info("configuration loaded",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.String("vis_dir", cfg.VisDir),
		zap.Float64("max_dist", cfg.MaxDist),
		zap.Int("max_age", cfg.MaxAge),
		zap.Float64("alpha", cfg.Alpha),
	)

	frames, err := ingest.LoadFrames(cfg.Input)
	if err != nil {
		logger.Error("failed to load input frames", zap.Error(err))
		return err
	}
	logger.Info("loaded frames", zap.Int("count", len(frames)))

	params := mot.DefaultParams()
	params.MaxDist = cfg.MaxDist
	params.MaxAge = cfg.MaxAge
	params.Alpha = cfg.Alpha
	engine := mot.NewEngine(params)

	var renderErr error
	onFrame := func(index int, result driver.FrameResult, tracks []mot.TrackView) {
		if renderErr != nil {
			return
		}
		if err := visualize.Render(cfg.VisDir, index, tracks); err != nil {
			logger.Error("failed to render visualization frame", zap.Int("frame", index), zap.Error(err))
			renderErr = err
		}
	}

	results, err := driver.Run(frames, engine, onFrame)
	if err != nil {
		logger.Error("tracker step failed, engine is poisoned", zap.Error(err))
		return err
	}
	if renderErr != nil {
		return renderErr
	}

	if err := ingest.SaveFrames(cfg.Output, results); err != nil {
		logger.Error("failed to write output frames", zap.Error(err))
		return err
	}

	logger.Info("run complete", zap.Int("frames", len(results)))
	return nil
}

func defaultsINIPath() string {
	if _, err := os.Stat("defaults.ini"); err == nil {
		return "defaults.ini"
	}
	return ""
}
