package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/config"
	"github.com/Faultbox/domeview/internal/engine/geometry"
	"github.com/Faultbox/domeview/internal/logger"
)

// StepFunc is called after each headless frame with the tick number and the
// generated geometry. Returning an error stops the run.
type StepFunc func(tick uint64, b *geometry.Buffers) error

// RunHeadless runs the frame pipeline without a window at cfg.Headless.Hz
// until ctx is done or cfg.Headless.Ticks frames have been produced.
func RunHeadless(ctx context.Context, cfg *config.Config, step StepFunc) error {
	hz := cfg.Headless.Hz
	if hz <= 0 {
		hz = 60
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hz)
	}

	p, err := NewPipeline(cfg)
	if err != nil {
		return err
	}

	log := logger.Named("headless")
	log.Info("running", zap.Int("hz", hz), zap.Uint64("ticks", cfg.Headless.Ticks))

	t := time.NewTicker(d)
	defer t.Stop()

	var (
		buffers geometry.Buffers
		tick    uint64
		frames  int
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			f := p.Step()
			geometry.Build(f, &buffers)
			if step != nil {
				if err := step(tick, &buffers); err != nil {
					return err
				}
			}
			tick++
			frames++
			if frames == hz {
				p.LogStats(frames)
				frames = 0
			}
			if cfg.Headless.Ticks > 0 && tick >= cfg.Headless.Ticks {
				p.LogStats(frames)
				log.Info("done", zap.Uint64("ticks", tick))
				return nil
			}
		}
	}
}
