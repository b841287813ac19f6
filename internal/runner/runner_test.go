package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dkoosis/jscheck/internal/env"
	"github.com/dkoosis/jscheck/internal/filter"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeFiles fails files listed in failing and returns an error for files in broken.
type fakeFiles struct {
	failing map[string]bool
	broken  map[string]error
	delay   func(path string) time.Duration

	mu      sync.Mutex
	checked []string
	active  atomic.Int32
	peak    atomic.Int32
}

func (f *fakeFiles) RunFile(ctx context.Context, path string, profile env.Profile) (filter.FileResult, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	f.mu.Lock()
	f.checked = append(f.checked, path)
	f.mu.Unlock()

	if f.delay != nil {
		select {
		case <-time.After(f.delay(path)):
		case <-ctx.Done():
			return filter.FileResult{}, ctx.Err()
		}
	}
	if err := f.broken[path]; err != nil {
		return filter.FileResult{}, &filter.ReadError{Path: path, Err: err}
	}
	res := filter.FileResult{Path: path, RelPath: path, Profile: profile, Passed: true}
	if f.failing[path] {
		res.Passed = false
		res.Messages = []string{filter.FormatLine(1, "Missing semicolon.")}
	}
	return res, nil
}

func collect(emitted *[]string) func(filter.FileResult) error {
	return func(r filter.FileResult) error {
		*emitted = append(*emitted, r.Path)
		return nil
	}
}

func TestOutcome_Fold(t *testing.T) {
	var o Outcome
	assert.True(t, o.Passed())
	assert.Equal(t, ExitOK, o.ExitCode())

	o = o.Add(filter.FileResult{Path: "a.js", Passed: true})
	assert.Equal(t, ExitOK, o.ExitCode())

	o = o.Add(filter.FileResult{Path: "b.js"})
	o = o.Add(filter.FileResult{Path: "c.js", Passed: true})
	assert.False(t, o.Passed())
	assert.Equal(t, 1, o.Failed)
	assert.Equal(t, ExitFailed, o.ExitCode())
	assert.Len(t, o.Results, 3)
}

func TestRun_SequentialKeepsOrderAndContinuesPastFailures(t *testing.T) {
	files := &fakeFiles{failing: map[string]bool{"b.js": true}}
	var emitted []string

	out, err := Run(context.Background(), []string{"a.js", "b.js", "c.js"}, files, Config{Emit: collect(&emitted)})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "b.js", "c.js"}, emitted)
	assert.Equal(t, []string{"a.js", "b.js", "c.js"}, files.checked)
	assert.Equal(t, ExitFailed, out.ExitCode())
	assert.Equal(t, int32(1), files.peak.Load())
}

func TestRun_SequentialReadErrorStopsRun(t *testing.T) {
	files := &fakeFiles{broken: map[string]error{"b.js": errors.New("permission denied")}}
	var emitted []string

	out, err := Run(context.Background(), []string{"a.js", "b.js", "c.js"}, files, Config{Emit: collect(&emitted)})

	var readErr *filter.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "b.js", readErr.Path)
	assert.Equal(t, []string{"a.js"}, emitted)
	assert.Equal(t, []string{"a.js", "b.js"}, files.checked, "c.js must not be checked")
	assert.Len(t, out.Results, 1)
}

func TestRun_ClassifiesEachPath(t *testing.T) {
	files := &fakeFiles{}
	out, err := Run(context.Background(), []string{"static/js/a.js", "zerver/tests/frontend/b.js", "c.js"}, files, Config{})
	require.NoError(t, err)

	require.Len(t, out.Results, 3)
	assert.Equal(t, env.KindFrontendBrowser, out.Results[0].Profile.Kind)
	assert.Equal(t, env.KindBrowserTestHarness, out.Results[1].Profile.Kind)
	assert.Equal(t, env.KindBackendServer, out.Results[2].Profile.Kind)
}

func TestRun_ParallelEmitsInInputOrder(t *testing.T) {
	paths := make([]string, 20)
	failing := map[string]bool{}
	for i := range paths {
		paths[i] = fmt.Sprintf("f%02d.js", i)
		if i%3 == 0 {
			failing[paths[i]] = true
		}
	}
	files := &fakeFiles{
		failing: failing,
		// Earlier files take longer so completion order is reversed.
		delay: func(path string) time.Duration {
			var i int
			_, _ = fmt.Sscanf(path, "f%02d.js", &i)
			return time.Duration(20-i) * time.Millisecond
		},
	}
	var emitted []string

	out, err := Run(context.Background(), paths, files, Config{Jobs: 4, Emit: collect(&emitted)})
	require.NoError(t, err)

	assert.Equal(t, paths, emitted)
	assert.Equal(t, 7, out.Failed)
	assert.LessOrEqual(t, files.peak.Load(), int32(4))
	assert.Greater(t, files.peak.Load(), int32(1))
}

func TestRun_ParallelErrorStopsEmission(t *testing.T) {
	paths := []string{"a.js", "b.js", "c.js", "d.js"}
	files := &fakeFiles{
		broken: map[string]error{"c.js": errors.New("gone")},
		delay: func(path string) time.Duration {
			if path == "a.js" {
				return 10 * time.Millisecond
			}
			return 0
		},
	}
	var emitted []string

	_, err := Run(context.Background(), paths, files, Config{Jobs: 2, Emit: collect(&emitted)})

	var readErr *filter.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "c.js", readErr.Path)
	assert.Equal(t, []string{"a.js", "b.js"}, emitted)
}

func TestRun_ParallelSlowEarlierFileSurvivesLaterReadError(t *testing.T) {
	files := &fakeFiles{
		broken: map[string]error{"b.js": errors.New("no such file")},
		delay: func(path string) time.Duration {
			if path == "a.js" {
				return 50 * time.Millisecond
			}
			return 0
		},
	}

	for _, jobs := range []int{1, 2, 4} {
		t.Run(fmt.Sprintf("jobs=%d", jobs), func(t *testing.T) {
			var emitted []string
			out, err := Run(context.Background(), []string{"a.js", "b.js", "c.js"}, files, Config{Jobs: jobs, Emit: collect(&emitted)})

			var readErr *filter.ReadError
			require.ErrorAs(t, err, &readErr)
			assert.Equal(t, "b.js", readErr.Path)
			assert.Equal(t, []string{"a.js"}, emitted)
			assert.Len(t, out.Results, 1)
		})
	}
}

func TestRun_ParallelSkipsFilesAfterFailure(t *testing.T) {
	paths := []string{"a.js", "b.js", "c.js", "d.js", "e.js"}
	files := &fakeFiles{
		broken: map[string]error{"a.js": errors.New("gone")},
		delay: func(path string) time.Duration {
			if path == "a.js" {
				return 0
			}
			return 20 * time.Millisecond
		},
	}
	var emitted []string

	_, err := Run(context.Background(), paths, files, Config{Jobs: 2, Emit: collect(&emitted)})

	require.Error(t, err)
	assert.Empty(t, emitted)
	assert.NotContains(t, files.checked, "e.js")
}

func TestRun_EmitErrorStopsRun(t *testing.T) {
	stop := errors.New("stdout closed")
	for _, jobs := range []int{1, 3} {
		t.Run(fmt.Sprintf("jobs=%d", jobs), func(t *testing.T) {
			files := &fakeFiles{}
			calls := 0
			emit := func(filter.FileResult) error {
				calls++
				if calls == 2 {
					return stop
				}
				return nil
			}
			out, err := Run(context.Background(), []string{"a.js", "b.js", "c.js", "d.js"}, files, Config{Jobs: jobs, Emit: emit})
			require.ErrorIs(t, err, stop)
			assert.Len(t, out.Results, 1)
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []string{"a.js", "b.js"}, &fakeFiles{}, Config{})
	require.ErrorIs(t, err, context.Canceled)

	_, err = Run(ctx, []string{"a.js", "b.js"}, &fakeFiles{}, Config{Jobs: 2})
	require.ErrorIs(t, err, context.Canceled)
}
