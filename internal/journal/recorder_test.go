package journal

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jask/hubdash/internal/viewstate"
)

func event(phase viewstate.Phase, at time.Time) viewstate.Event {
	return viewstate.Event{
		Axis:  viewstate.AxisSection,
		Phase: phase,
		From:  "overview",
		To:    "analytics",
		Token: viewstate.NewToken(),
		At:    at,
	}
}

func TestRecorderRingKeepsNewest(t *testing.T) {
	r := NewRecorder(3)
	now := time.Now()
	for i := 0; i < 5; i++ {
		r.Observe(event(viewstate.PhaseExiting, now.Add(time.Duration(i)*time.Second)))
	}
	require.Equal(t, 3, r.Len())

	all := r.Recent(0)
	require.Equal(t, []int64{3, 4, 5}, []int64{all[0].Seq, all[1].Seq, all[2].Seq})

	last := r.Recent(2)
	require.Len(t, last, 2)
	require.Equal(t, int64(5), last[1].Seq)
	require.NoError(t, r.Close())
}

func TestRecorderActivity(t *testing.T) {
	r := NewRecorder(16)
	now := time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC)
	r.Observe(event(viewstate.PhaseExiting, now.Add(-9500*time.Millisecond)))
	r.Observe(event(viewstate.PhaseEntering, now.Add(-9400*time.Millisecond)))
	r.Observe(event(viewstate.PhaseExiting, now.Add(-500*time.Millisecond)))
	r.Observe(event(viewstate.PhaseExiting, now.Add(-200*time.Millisecond)))
	r.Observe(event(viewstate.PhaseExiting, now.Add(-time.Minute)))

	times, counts := r.Activity(now, time.Second, 10)
	require.Len(t, times, 10)
	require.Equal(t, now, times[9])
	require.Equal(t, 1.0, counts[0])
	require.Equal(t, 2.0, counts[9])

	total := 0.0
	for _, c := range counts {
		total += c
	}
	require.Equal(t, 3.0, total, "entering phases and old events are not counted")
}

func TestRecorderExportFile(t *testing.T) {
	r := NewRecorder(8)
	r.Observe(event(viewstate.PhaseExiting, time.Now().UTC()))
	r.Observe(event(viewstate.PhaseIdle, time.Now().UTC()))

	path, err := r.ExportFile(t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var trace Trace
	require.NoError(t, yaml.Unmarshal(data, &trace))
	require.Equal(t, r.Session(), trace.Session)
	require.Len(t, trace.Entries, 2)
	require.Equal(t, "idle", trace.Entries[1].Phase)
}

func TestRecorderPersistsToStore(t *testing.T) {
	path := t.TempDir() + "/journal.db"
	repo, closer, err := OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	r := NewRecorder(4, WithStore(repo), WithBuffer(64))
	for i := 0; i < 6; i++ {
		r.Observe(event(viewstate.PhaseExiting, time.Now().UTC()))
	}
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	r.Observe(event(viewstate.PhaseExiting, time.Now().UTC()))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rows, err := repo.ListSession(ctx, r.Session(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 6, "the store keeps every entry even when the ring wraps")
	require.Zero(t, r.Dropped())
}
