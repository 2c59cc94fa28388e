package particle

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestUpdateParallelMatchesUpdate(t *testing.T) {
	cfg := Config{Count: 1003, Width: 800, Height: 600, Seed: 42}
	for _, workers := range []int{0, 1, 3, 8, 2000} {
		seq, par := New(cfg), New(cfg)
		for i := 0; i < 50; i++ {
			seq.Update(0.5)
			if err := par.UpdateParallel(context.Background(), 0.5, workers); err != nil {
				t.Fatal(err)
			}
		}
		if diff := cmp.Diff(seq.Particles, par.Particles); diff != "" {
			t.Errorf("%d workers: parallel update differs (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestBounce(t *testing.T) {
	s := &System{
		cfg: Config{Width: 100, Height: 100},
		Particles: []Particle{
			{Pos: Vec{97, 50}, Vel: Vec{2, 0}, Radius: 2},
			{Pos: Vec{50, 3}, Vel: Vec{0, -2}, Radius: 2},
			{Pos: Vec{50, 50}, Vel: Vec{1, 1}, Radius: 2},
		},
	}
	s.Update(1)
	want := []Particle{
		{Pos: Vec{99, 50}, Vel: Vec{-2, 0}, Radius: 2},
		{Pos: Vec{50, 1}, Vel: Vec{0, 2}, Radius: 2},
		{Pos: Vec{51, 51}, Vel: Vec{1, 1}, Radius: 2},
	}
	if diff := cmp.Diff(want, s.Particles); diff != "" {
		t.Errorf("wrong state (-want +got):\n%s", diff)
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(DefaultConfig), New(DefaultConfig)
	if len(a.Particles) != DefaultConfig.Count {
		t.Fatalf("got %d particles, want %d", len(a.Particles), DefaultConfig.Count)
	}
	if diff := cmp.Diff(a.Particles, b.Particles); diff != "" {
		t.Errorf("same seed gave different particles:\n%s", diff)
	}
	for i, p := range a.Particles {
		if p.Pos.X < 0 || p.Pos.X > DefaultConfig.Width || p.Pos.Y < 0 || p.Pos.Y > DefaultConfig.Height {
			t.Fatalf("particle %d outside box: %+v", i, p)
		}
		if p.Radius < 2 || p.Radius > 5 {
			t.Fatalf("particle %d has radius %v", i, p.Radius)
		}
	}
}

type frameCounter struct{ n int }

func (c *frameCounter) Frame(time.Duration) { c.n++ }

func TestRun(t *testing.T) {
	cfg := Config{Count: 100, Width: 800, Height: 600, Seed: 1}
	for _, mode := range []Mode{Single, Multi} {
		var c frameCounter
		err := Run(context.Background(), New(cfg), RunConfig{Mode: mode, Step: 0.016, Frames: 10}, &c)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if c.n != 10 {
			t.Errorf("%s: got %d frames, want 10", mode, c.n)
		}
	}
}

func TestRunErrors(t *testing.T) {
	s := New(Config{Count: 10, Width: 10, Height: 10})
	var c frameCounter
	if err := Run(context.Background(), s, RunConfig{Mode: Single}, &c); err == nil {
		t.Error("expected error without frame or duration limit")
	}
	if err := Run(context.Background(), s, RunConfig{Mode: "both", Frames: 1}, &c); err == nil {
		t.Error("expected error for unknown mode")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, s, RunConfig{Mode: Single, Frames: 1}, &c); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("multi"); err != nil || m != Multi {
		t.Errorf("got %v, %v", m, err)
	}
	if _, err := ParseMode("combined"); err == nil {
		t.Error("expected error")
	}
}
