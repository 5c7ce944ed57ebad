package journal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jask/hubdash/internal/database/repository"
	"github.com/jask/hubdash/internal/viewstate"
)

const (
	defaultBuffer = 256
	maxBatch      = 64
	writeTimeout  = 2 * time.Second
)

// Entry is one recorded phase event.
type Entry struct {
	Seq   int64     `yaml:"seq"`
	Axis  string    `yaml:"axis"`
	Phase string    `yaml:"phase"`
	From  string    `yaml:"from"`
	To    string    `yaml:"to"`
	Token string    `yaml:"token"`
	At    time.Time `yaml:"at"`
}

// Trace is the exported document.
type Trace struct {
	Session  string    `yaml:"session"`
	Exported time.Time `yaml:"exported"`
	Dropped  int       `yaml:"dropped"`
	Entries  []Entry   `yaml:"entries"`
}

type Option func(*Recorder)

// WithStore persists entries through repo. Writes happen on a background
// goroutine; entries are dropped, not blocked on, when it falls behind.
func WithStore(repo *repository.TransitionRepo) Option {
	return func(r *Recorder) { r.repo = repo }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithBuffer(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.buffer = n
		}
	}
}

// Recorder keeps the last capacity entries of one session.
type Recorder struct {
	mu       sync.Mutex
	session  string
	capacity int
	ring     []Entry
	head     int
	seq      int64
	dropped  int
	closed   bool

	repo   *repository.TransitionRepo
	buffer int
	ch     chan Entry
	done   chan struct{}
	logger *slog.Logger
}

func NewRecorder(capacity int, opts ...Option) *Recorder {
	if capacity <= 0 {
		capacity = 1
	}
	r := &Recorder{
		session:  uuid.NewString(),
		capacity: capacity,
		ring:     make([]Entry, 0, capacity),
		buffer:   defaultBuffer,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.repo != nil {
		r.ch = make(chan Entry, r.buffer)
		r.done = make(chan struct{})
		go r.write()
	}
	return r
}

func (r *Recorder) Session() string { return r.session }

// Observe records ev. It is registered as a coordinator observer.
func (r *Recorder) Observe(ev viewstate.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.seq++
	e := Entry{
		Seq:   r.seq,
		Axis:  string(ev.Axis),
		Phase: string(ev.Phase),
		From:  ev.From,
		To:    ev.To,
		Token: ev.Token.String(),
		At:    ev.At,
	}
	if len(r.ring) < r.capacity {
		r.ring = append(r.ring, e)
	} else {
		r.ring[r.head] = e
		r.head = (r.head + 1) % r.capacity
	}
	if r.ch == nil {
		return
	}
	select {
	case r.ch <- e:
	default:
		r.dropped++
	}
}

// Recent returns up to n of the newest entries, oldest first. n <= 0 returns
// everything held.
func (r *Recorder) Recent(n int) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]Entry, 0, len(r.ring))
	all = append(all, r.ring[r.head:]...)
	all = append(all, r.ring[:r.head]...)
	if n > 0 && n < len(all) {
		all = all[len(all)-n:]
	}
	return all
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ring)
}

// Dropped counts entries that did not reach the store.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Activity counts recorded transitions that started in each of the given
// number of buckets ending at now, oldest bucket first.
func (r *Recorder) Activity(now time.Time, bucket time.Duration, buckets int) ([]time.Time, []float64) {
	if bucket <= 0 || buckets <= 0 {
		return nil, nil
	}
	start := now.Add(-bucket * time.Duration(buckets))
	times := make([]time.Time, buckets)
	counts := make([]float64, buckets)
	for i := range times {
		times[i] = start.Add(bucket * time.Duration(i+1))
	}
	for _, e := range r.Recent(0) {
		if e.Phase != string(viewstate.PhaseHold) && e.Phase != string(viewstate.PhaseExiting) {
			continue
		}
		if e.At.Before(start) || e.At.After(now) {
			continue
		}
		i := int(e.At.Sub(start) / bucket)
		if i >= buckets {
			i = buckets - 1
		}
		counts[i]++
	}
	return times, counts
}

// Snapshot builds the exportable trace of what the ring holds.
func (r *Recorder) Snapshot() Trace {
	return Trace{
		Session:  r.session,
		Exported: time.Now().UTC(),
		Dropped:  r.Dropped(),
		Entries:  r.Recent(0),
	}
}

// ExportFile writes the trace as YAML into dir and returns the file path.
func (r *Recorder) ExportFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir trace dir: %w", err)
	}
	trace := r.Snapshot()
	data, err := yaml.Marshal(trace)
	if err != nil {
		return "", fmt.Errorf("marshal trace: %w", err)
	}
	name := fmt.Sprintf("trace-%s-%s.yaml", r.session[:8], trace.Exported.Format("20060102T150405"))
	path := filepath.Join(dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("write trace: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write trace: %w", err)
	}
	return path, nil
}

// Close stops recording and waits for pending store writes.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	ch := r.ch
	r.mu.Unlock()
	if ch == nil {
		return nil
	}
	close(ch)
	<-r.done
	return nil
}

func (r *Recorder) write() {
	defer close(r.done)
	batch := make([]repository.Transition, 0, maxBatch)
	for e := range r.ch {
		batch = append(batch, r.row(e))
	drain:
		for len(batch) < maxBatch {
			select {
			case next, ok := <-r.ch:
				if !ok {
					break drain
				}
				batch = append(batch, r.row(next))
			default:
				break drain
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.repo.InsertBatch(ctx, batch); err != nil {
			r.logger.Error("journal write failed", "error", err, "rows", len(batch))
		}
		cancel()
		batch = batch[:0]
	}
}

func (r *Recorder) row(e Entry) repository.Transition {
	return repository.Transition{
		SessionID: r.session,
		Seq:       e.Seq,
		Axis:      e.Axis,
		Phase:     e.Phase,
		From:      e.From,
		To:        e.To,
		Token:     e.Token,
		At:        e.At,
	}
}
