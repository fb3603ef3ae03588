package tile

import (
	"testing"

	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/orbit"
	"github.com/lmeyer/mandelperturb/perturb"
)

func TestSizeFloorsAtEight(t *testing.T) {
	cases := map[int]int{16: 16, 4: 8, 1: 8}
	for step, want := range cases {
		if got := Size(step); got != want {
			t.Errorf("Size(%d) = %d, want %d", step, got, want)
		}
	}
}

func TestScheduleEmitsOneJobPerStepPerSchedule(t *testing.T) {
	width, height := 20, 10
	o := orbit.New(64)
	o.Length = 64

	var jobs []perturb.Job
	Schedule(width, height, 64, 0.01, o, 7, func(job perturb.Job) {
		jobs = append(jobs, job)
	})

	if len(jobs) == 0 {
		t.Fatalf("expected at least one job")
	}

	steps := map[int]int{}
	for _, j := range jobs {
		steps[j.Step]++
	}
	if len(steps) != len(config.StepSchedule) {
		t.Fatalf("got jobs for %d distinct steps, want %d", len(steps), len(config.StepSchedule))
	}
	for _, step := range config.StepSchedule {
		if steps[step] == 0 {
			t.Errorf("no job emitted for step %d", step)
		}
	}
}

func TestScheduleTilesCoverFramebufferInRowMajorOrder(t *testing.T) {
	width, height := 20, 10
	o := orbit.New(64)
	o.Length = 64

	var origins []struct{ x, y int }
	Schedule(width, height, 64, 0.01, o, 3, func(job perturb.Job) {
		if job.Step != 16 {
			return // only check the coarsest pass's layout
		}
		origins = append(origins, struct{ x, y int }{job.OriginX, job.OriginY})
	})

	if len(origins) == 0 {
		t.Fatalf("no tiles emitted for step 16")
	}

	// Row-major: y must be non-decreasing, and within a row x must be
	// strictly increasing.
	for i := 1; i < len(origins); i++ {
		prev, cur := origins[i-1], origins[i]
		if cur.y < prev.y {
			t.Fatalf("origin %d (%d,%d) precedes prior row start (%d,%d)", i, cur.x, cur.y, prev.x, prev.y)
		}
		if cur.y == prev.y && cur.x <= prev.x {
			t.Fatalf("origin %d (%d,%d) not strictly right of prior (%d,%d) in same row", i, cur.x, cur.y, prev.x, prev.y)
		}
	}

	// Every origin must be within bounds and tile-aligned.
	size := Size(16)
	for _, o := range origins {
		if o.x < 0 || o.x >= width || o.y < 0 || o.y >= height {
			t.Errorf("origin (%d,%d) out of framebuffer bounds", o.x, o.y)
		}
		if o.x%size != 0 || o.y%size != 0 {
			t.Errorf("origin (%d,%d) not aligned to tile size %d", o.x, o.y, size)
		}
	}
}

func TestScheduleJobsCarryGenerationAndOrbit(t *testing.T) {
	width, height := 8, 8
	o := orbit.New(64)
	o.Length = 64

	var jobs []perturb.Job
	Schedule(width, height, 64, 0.02, o, 99, func(job perturb.Job) {
		jobs = append(jobs, job)
	})

	for _, j := range jobs {
		if j.Generation != 99 {
			t.Errorf("job generation = %d, want 99", j.Generation)
		}
		if j.Orbit != o {
			t.Errorf("job does not carry the shared orbit pointer")
		}
		if j.Samples != 1 {
			t.Errorf("job.Samples = %d, want 1", j.Samples)
		}
	}
}
