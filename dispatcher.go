package afio

import (
	"runtime"
	"sync"

	"github.com/afio-go/afio/afiocfg"
	"github.com/afio-go/afio/internal/diag"
	"github.com/afio-go/afio/internal/dircache"
	"github.com/afio-go/afio/internal/lockfile"
	"github.com/afio-go/afio/internal/nativeio"
	"github.com/afio-go/afio/internal/pool"
)

// Dispatcher is the operation graph scheduler of spec.md §4.F: it accepts
// operations with an optional precondition Future, chains each one's task
// behind that precondition's completion, and runs the task either inline
// (OpImmediate) or through its bounded thread source (OpNone), publishing
// the result to the returned Future.
type Dispatcher struct {
	pool    *pool.Pool
	log     *diag.Logger
	metrics *metrics
	locks   *lockfile.Registry
	dirs    *dircache.Cache

	mu      sync.Mutex
	filters []FilterFunc
}

// dirCacheShardSize bounds how many directory handles the process-wide
// cache keeps open per shard (spec §4.D).
const dirCacheShardSize = 64

// New constructs a Dispatcher backed by a thread source of the given
// size. A nil logger discards diagnostics.
func New(workers int, logger *diag.Logger) *Dispatcher {
	if logger == nil {
		logger = diag.Discard()
	}
	d := &Dispatcher{
		pool:    pool.New(workers),
		log:     logger,
		metrics: newMetrics(),
		locks:   lockfile.New(),
	}
	d.dirs = dircache.New(dirCacheShardSize, func(canonical string) (dircache.Handle, error) {
		return nativeio.OpenDirectory(canonical, 0)
	})
	return d
}

// NewFromOptions constructs a Dispatcher from an afiocfg.Options,
// resolving Workers against the host's CPU count and sizing the
// directory-handle cache per DirCacheShardSize.
func NewFromOptions(opts afiocfg.Options, logger *diag.Logger) *Dispatcher {
	d := New(opts.ResolvedWorkers(runtime.NumCPU()), logger)
	d.dirs = dircache.New(opts.DirCacheShardSize, func(canonical string) (dircache.Handle, error) {
		return nativeio.OpenDirectory(canonical, 0)
	})
	return d
}

// AddFilter registers a post-op filter run against every operation's
// (value, error) pair before it's published, in registration order (spec
// §4.F "post-op filters"). Typical uses are read/write buffer
// instrumentation or accounting.
func (d *Dispatcher) AddFilter(f FilterFunc) {
	d.mu.Lock()
	d.filters = append(d.filters, f)
	d.mu.Unlock()
}

func (d *Dispatcher) runFilters(kind OpKind, value any, err error) (any, error) {
	d.mu.Lock()
	filters := append([]FilterFunc(nil), d.filters...)
	d.mu.Unlock()
	for _, f := range filters {
		value, err = f(kind, value, err)
	}
	return value, err
}

// Depth reports the number of tasks queued but not yet dispatched to a
// worker, for diagnostics.
func (d *Dispatcher) Depth() int { return d.pool.Depth() }

// Shutdown waits for all outstanding and queued tasks to finish.
func (d *Dispatcher) Shutdown() { d.pool.Shutdown() }

// Submit schedules fn to run once pre completes (immediately, if pre is
// nil), publishing its result to the returned Future. If pre completed
// with an error, fn is not run and that error is published instead. flags
// controls whether fn runs inline on the completing goroutine
// (OpImmediate) or is handed to the thread source (the default, OpNone).
func (d *Dispatcher) Submit(pre *Future, kind OpKind, flags AsyncOpFlags, fn func() (any, error)) *Future {
	out := newFuture()
	run := func() {
		var value any
		var err error
		if pre != nil {
			_, err, _ = pre.Result()
		}
		if err == nil {
			value, err = fn()
		}
		value, err = d.runFilters(kind, value, err)
		d.metrics.record(kind, err)
		if err != nil {
			d.log.Debugf("operation failed", "kind", kind, "future", out.id, "error", err)
		}
		out.complete(value, err)
	}

	schedule := func() {
		if flags.Has(OpImmediate) {
			run()
			return
		}
		d.pool.Enqueue(run)
	}

	if pre == nil {
		schedule()
		return out
	}
	pre.onDone(schedule)
	return out
}

// Barrier waits for every Future in deps to complete (spec §4.F "barrier
// fan-in"), then runs fn with their gathered results. A zero-length deps
// list behaves as an always-ready precondition: fn is scheduled at once
// (inline with OpImmediate, otherwise through the thread source),
// matching the "empty barrier" edge case in spec §8. The barrier Future
// itself completes once fn's result is published, so a barrier can be
// chained into Submit/Barrier as a precondition (fan-out) just like any
// other Future.
func (d *Dispatcher) Barrier(deps []*Future, flags AsyncOpFlags, fn func(results []BarrierResult) (any, error)) *Future {
	out := newFuture()

	run := func(results []BarrierResult) {
		value, err := fn(results)
		value, err = d.runFilters(OpKindBarrier, value, err)
		d.metrics.record(OpKindBarrier, err)
		out.complete(value, err)
	}

	n := len(deps)
	if n == 0 {
		if flags.Has(OpImmediate) {
			run(nil)
		} else {
			d.pool.Enqueue(func() { run(nil) })
		}
		return out
	}

	results := make([]BarrierResult, n)
	var remaining int64 = int64(n)
	var mu sync.Mutex
	for i, dep := range deps {
		i := i
		dep.onDone(func() {
			value, err, _ := dep.Result()
			mu.Lock()
			results[i] = BarrierResult{Value: value, Err: err}
			remaining--
			last := remaining == 0
			mu.Unlock()
			if !last {
				return
			}
			if flags.Has(OpImmediate) {
				run(results)
			} else {
				d.pool.Enqueue(func() { run(results) })
			}
		})
	}
	return out
}

// BarrierResult pairs one fanned-in Future's published value and error.
type BarrierResult struct {
	Value any
	Err   error
}

// CompletionCallback is spec §4.F's user-defined continuation: invoked
// once its paired op in Completion's ops[] completes, with that op's id
// and its precondition Future. The callback observes the precondition's
// published result and, per spec §7's explicit exception for
// "user-completion callbacks", may transform its error before it
// propagates further. It returns whether it is ready to publish the
// completion's own result now; if ready is false, the callback must
// eventually call Publish on the Future Completion handed back for this
// op, mirroring detached_future's "impl publishes explicitly" contract.
type CompletionCallback func(id uint64, pre *Future) (ready bool, value any, err error)

// Completion implements spec §4.F's completion(ops[], callbacks[]): ops
// and callbacks are parallel arrays, and Completion returns one output
// Future per op, each completed by running callbacks[i] once ops[i]
// completes. Unlike Submit, which republishes a failed precondition's
// error untouched, and Barrier, which hands every input's result to a
// single fn and publishes one combined result, a Completion callback
// gets its own output per op and can inspect and transform that op's
// error before it propagates — the exception spec §7 names explicitly
// alongside barriers. flags governs scheduling exactly
// as Submit/Barrier do: OpImmediate runs each callback inline on the
// goroutine that completes its precondition, otherwise it's handed to
// the thread source.
func (d *Dispatcher) Completion(ops []*Future, flags AsyncOpFlags, callbacks []CompletionCallback) []*Future {
	if len(ops) != len(callbacks) {
		panicFatal("afio: Completion requires one callback per op, got %d ops and %d callbacks", len(ops), len(callbacks))
	}

	outs := make([]*Future, len(ops))
	for i := range ops {
		pre := ops[i]
		cb := callbacks[i]
		out := newFuture()
		outs[i] = out

		run := func() {
			ready, value, err := cb(pre.ID(), pre)
			if !ready {
				return
			}
			value, err = d.runFilters(OpKindCompletion, value, err)
			d.metrics.record(OpKindCompletion, err)
			out.complete(value, err)
		}

		if flags.Has(OpImmediate) {
			pre.onDone(run)
		} else {
			pre.onDone(func() { d.pool.Enqueue(run) })
		}
	}
	return outs
}

// Completed returns an already-complete Future wrapping value/err,
// suitable as a precondition that's ready immediately.
func Completed(value any, err error) *Future { return completedFuture(value, err) }
