// Package particle implements a simple particle workload used to produce frame
// timing samples. Particles move in a box and bounce off its walls. The update can
// run on one goroutine or be split across several.
package particle

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

type Vec struct{ X, Y float64 }

type Particle struct {
	Pos    Vec
	Vel    Vec
	Radius float64
}

// Config describes a particle system.
type Config struct {
	Count  int     `json:"count"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Seed   int64   `json:"seed"`
}

// DefaultConfig matches the particle benchmark: 10000 particles on an 800x600 screen.
var DefaultConfig = Config{Count: 10000, Width: 800, Height: 600, Seed: 0x1334}

type System struct {
	cfg       Config
	Particles []Particle
}

// New creates a system with randomly placed particles.
func New(cfg Config) *System {
	rnd := rand.New(rand.NewSource(cfg.Seed))
	s := &System{cfg: cfg, Particles: make([]Particle, cfg.Count)}
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Pos:    Vec{rnd.Float64() * cfg.Width, rnd.Float64() * cfg.Height},
			Vel:    Vec{float64(rnd.Intn(401)-200) / 100, float64(rnd.Intn(401)-200) / 100},
			Radius: float64(2 + rnd.Intn(4)),
		}
	}
	return s
}

// Update advances all particles by dt on the calling goroutine.
func (s *System) Update(dt float64) {
	s.update(s.Particles, dt)
}

// UpdateParallel advances all particles by dt, splitting the work into
// contiguous chunks handled by separate goroutines. The last chunk takes
// the remainder.
func (s *System) UpdateParallel(ctx context.Context, dt float64, workers int) error {
	if workers < 1 {
		workers = 1
	}
	n := len(s.Particles)
	chunk := n / workers
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = n
		}
		part := s.Particles[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.update(part, dt)
			return nil
		})
	}
	return g.Wait()
}

func (s *System) update(ps []Particle, dt float64) {
	for i := range ps {
		p := &ps[i]
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		if p.Pos.X <= p.Radius || p.Pos.X >= s.cfg.Width-p.Radius {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y <= p.Radius || p.Pos.Y >= s.cfg.Height-p.Radius {
			p.Vel.Y = -p.Vel.Y
		}
	}
}

// Mode selects how frames are computed.
type Mode string

const (
	Single Mode = "single"
	Multi  Mode = "multi"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Single, Multi:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// FrameRecorder receives the duration of each frame.
type FrameRecorder interface {
	Frame(d time.Duration)
}

// RunConfig controls a benchmark run. The run ends after Frames frames or once
// Duration has passed, whichever comes first. Zero values disable a limit, but
// at least one must be set.
type RunConfig struct {
	Mode     Mode          `json:"mode"`
	Workers  int           `json:"workers"` // used in Multi mode, defaults to GOMAXPROCS
	Step     float64       `json:"step"`    // simulation step per frame
	Frames   int           `json:"frames"`
	Duration time.Duration `json:"duration"`
}

// Run updates s once per frame and reports each frame's duration to rec.
func Run(ctx context.Context, s *System, cfg RunConfig, rec FrameRecorder) error {
	if cfg.Frames <= 0 && cfg.Duration <= 0 {
		return fmt.Errorf("run needs a frame count or a duration")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	for frame := 0; cfg.Frames <= 0 || frame < cfg.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.Duration > 0 && time.Since(start) >= cfg.Duration {
			break
		}
		t0 := time.Now()
		switch cfg.Mode {
		case Multi:
			if err := s.UpdateParallel(ctx, cfg.Step, workers); err != nil {
				return err
			}
		case Single, "":
			s.Update(cfg.Step)
		default:
			return fmt.Errorf("unknown mode %q", cfg.Mode)
		}
		rec.Frame(time.Since(t0))
	}
	return nil
}
