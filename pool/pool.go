package pool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of long-lived worker goroutines fed by an unbounded FIFO queue.
// All workers start in New and stop in Close. Submit is safe for concurrent use.
type Pool struct {
	// noCopy prevents accidental copying of the pool.
	//go:nocopy
	nc noCopy

	config config

	queue   *queue
	workers []*worker
	wg      sync.WaitGroup
	inst    *instruments

	seq    atomic.Uint64
	closed atomic.Bool

	mu      sync.Mutex
	stopCtx func() bool
	lc      *lifecycleCoordinator
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New builds a Pool from opts and starts its workers.
// Cancelling ctx shuts the pool down as Close does; Close must still be called
// (or ctx cancelled) to release the workers.
func New(ctx context.Context, opts ...Option) (*Pool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	p := &Pool{
		config: cfg,
		queue:  newQueue(int(cfg.QueueCapacityHint)),
		inst:   newInstruments(cfg.Metrics),
	}
	p.lc = newLifecycleCoordinator(
		p.stopIntake,
		p.failPending,
		&p.wg,
		p.release,
	)
	p.start()

	if ctx != nil {
		p.mu.Lock()
		p.stopCtx = context.AfterFunc(ctx, p.Close)
		p.mu.Unlock()
	}
	return p, nil
}

func (p *Pool) start() {
	p.workers = make([]*worker, p.config.Workers)
	for i := range p.workers {
		w := newWorker(i, p.queue, p.config.PollInterval, p.inst)
		p.workers[i] = w
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run()
		}()
	}
}

// Submit enqueues t and returns its Job. Jobs are dequeued in submission order;
// completion order across jobs is not guaranteed.
// It returns ErrClosed once the pool is shutting down.
func (p *Pool) Submit(t Task) (*Job, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if t == nil {
		return nil, ErrNilTask
	}
	if p.closed.Load() {
		p.inst.rejected.Add(1)
		return nil, ErrClosed
	}

	j := newJob(t, p.seq.Add(1)-1)
	p.inst.queueDepth.Add(1)
	if err := p.queue.push(j); err != nil {
		p.inst.queueDepth.Add(-1)
		p.inst.rejected.Add(1)
		return nil, err
	}
	p.inst.submitted.Add(1)
	return j, nil
}

// Close shuts the pool down and waits for every worker to exit.
//
// Semantics:
// - Idempotent and safe for concurrent use.
// - Jobs being executed run to completion.
// - Jobs still queued complete with ErrClosed.
// - Must not be called from inside a Task: it would wait for its own worker.
func (p *Pool) Close() {
	p.closed.Store(true)
	p.lc.Close()
}

// stopIntake closes the queue and returns the jobs no worker picked up.
func (p *Pool) stopIntake() []*Job {
	p.closed.Store(true)
	return p.queue.close()
}

func (p *Pool) failPending(pending []*Job) {
	for _, j := range pending {
		p.inst.queueDepth.Add(-1)
		p.inst.rejected.Add(1)
		j.complete(ErrClosed)
	}
}

// release detaches the pool from the context given to New.
func (p *Pool) release() {
	p.mu.Lock()
	stop := p.stopCtx
	p.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int { return len(p.workers) }

// Pending returns the number of queued, not yet dequeued jobs.
func (p *Pool) Pending() int { return p.queue.len() }

// States returns a snapshot of every worker's state, indexed by worker id.
func (p *Pool) States() []State {
	states := make([]State, len(p.workers))
	for i, w := range p.workers {
		states[i] = w.State()
	}
	return states
}

// Closed reports whether shutdown has begun.
func (p *Pool) Closed() bool { return p.closed.Load() }
