package bench

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock replaces the monotonic clock for the duration of a test.
func fakeClock(t *testing.T) *time.Duration {
	now := new(time.Duration)
	orig := mononow
	mononow = func() time.Duration { return *now }
	t.Cleanup(func() { mononow = orig })
	return now
}

func TestRecorderFrameTime(t *testing.T) {
	now := fakeClock(t)
	*now = 5 * time.Second
	rec := NewRecorder(RecordConfig{Name: "particle_single"})
	rec.Start()

	*now += 500 * time.Millisecond
	rec.Frame(2 * time.Millisecond)
	*now += 500 * time.Millisecond
	rec.Frame(2500 * time.Microsecond)

	want := Table{
		Name:    "particle_single",
		XName:   "Time (s)",
		YName:   "Frame Time (ms)",
		Samples: []Sample{{0.5, 2}, {1, 2.5}},
	}
	if diff := cmp.Diff(want, rec.Table()); diff != "" {
		t.Errorf("wrong table (-want +got):\n%s", diff)
	}
	if rec.Elapsed() != time.Second {
		t.Errorf("got elapsed %v, want 1s", rec.Elapsed())
	}
}

func TestRecorderFPS(t *testing.T) {
	now := fakeClock(t)
	rec := NewRecorder(RecordConfig{Name: "rain_fps_multi", Unit: UnitFPS})
	rec.Start()
	*now += 250 * time.Millisecond
	rec.Frame(4 * time.Millisecond)
	rec.Frame(0)

	tab := rec.Table()
	if tab.YName != "FPS" {
		t.Errorf("got column %q, want FPS", tab.YName)
	}
	if diff := cmp.Diff([]Sample{{0.25, 250}, {0.25, 0}}, tab.Samples); diff != "" {
		t.Errorf("wrong samples (-want +got):\n%s", diff)
	}
}

func TestRecorderStartResets(t *testing.T) {
	fakeClock(t)
	rec := NewRecorder(RecordConfig{})
	rec.Start()
	rec.Frame(time.Millisecond)
	tab := rec.Table()
	rec.Start()
	if rec.Len() != 0 {
		t.Errorf("got %d samples after Start, want 0", rec.Len())
	}
	if tab.Len() != 1 {
		t.Error("Start modified a table returned earlier")
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit("fps"); err != nil || u != UnitFPS {
		t.Errorf("fps: got %v, %v", u, err)
	}
	if u, err := ParseUnit("frametime"); err != nil || u != UnitFrameTime {
		t.Errorf("frametime: got %v, %v", u, err)
	}
	if _, err := ParseUnit("seconds"); err == nil {
		t.Error("expected error for unknown unit")
	}
}
