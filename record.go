package bench

import (
	"fmt"
	"sync"
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

// Unit selects what a Recorder stores for each frame.
type Unit int

const (
	UnitFrameTime Unit = iota // frame time in milliseconds
	UnitFPS                   // frames per second
)

// ParseUnit parses "frametime" or "fps".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "frametime":
		return UnitFrameTime, nil
	case "fps":
		return UnitFPS, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

func (u Unit) column() string {
	if u == UnitFPS {
		return "FPS"
	}
	return "Frame Time (ms)"
}

type RecordConfig struct {
	Name     string        `json:"name"`
	Unit     Unit          `json:"unit"`
	Duration time.Duration `json:"duration"` // expected length of the run, for percentage logging

	LogPercent bool `json:"-"`
}

// Recorder collects per-frame timings against the monotonic clock.
type Recorder struct {
	cfg RecordConfig

	mu          sync.Mutex
	startTime   time.Duration
	samples     []Sample
	lastPercent int
}

func NewRecorder(cfg RecordConfig) *Recorder {
	return &Recorder{cfg: cfg}
}

// Start resets the recorder and sets the time origin.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startTime = mononow()
	r.samples = r.samples[:0]
	r.lastPercent = 0
}

// Elapsed returns the time since Start.
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mononow() - r.startTime
}

// Frame records a frame that took d.
func (r *Recorder) Frame(d time.Duration) {
	now := mononow()
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Sample{X: (now - r.startTime).Seconds()}
	switch r.cfg.Unit {
	case UnitFPS:
		if d > 0 {
			s.Y = float64(time.Second) / float64(d)
		}
	default:
		s.Y = float64(d) / float64(time.Millisecond)
	}
	r.samples = append(r.samples, s)
	r.logPercentage(now - r.startTime)
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

// Table returns a copy of the recorded samples.
func (r *Recorder) Table() Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Table{
		Name:    r.cfg.Name,
		XName:   "Time (s)",
		YName:   r.cfg.Unit.column(),
		Samples: append([]Sample(nil), r.samples...),
	}
}

func (r *Recorder) logPercentage(elapsed time.Duration) {
	if !r.cfg.LogPercent || r.cfg.Duration <= 0 {
		return
	}
	pct := int((float64(elapsed) / float64(r.cfg.Duration)) * 100)
	if pct > 100 {
		pct = 100
	}
	if pct > r.lastPercent {
		fmt.Printf("%3d%%  %s\n", pct, r.cfg.Name)
		r.lastPercent = pct
	}
}

var mononow = func() time.Duration {
	return time.Duration(monotime.Now())
}
