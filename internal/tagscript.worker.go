package internal

import (
	"sync"

	"go.uber.org/zap"
)

// Worker runs submitted jobs one at a time, in submission order, on a single
// goroutine. The queue is unbounded so Submit never blocks on a busy worker.
type Worker struct {
	name   string
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
	logger *zap.Logger
}

// NewWorker creates a worker and starts its goroutine.
func NewWorker(name string, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Worker{
		name:   name,
		done:   make(chan struct{}),
		logger: logger,
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	logger.Debug(LogMsgWorkerStarted, zap.String(LogFieldWorker, name))
	return w
}

// Submit enqueues job. It returns false if the worker has been closed.
func (w *Worker) Submit(job func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Debug(LogMsgWorkerRejected, zap.String(LogFieldWorker, w.name))
		return false
	}
	w.queue = append(w.queue, job)
	w.cond.Signal()
	return true
}

// Pending returns the number of queued jobs not yet started.
func (w *Worker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.queue)
}

// Close stops accepting jobs, lets queued jobs finish and waits for the
// goroutine to exit. It is safe to call more than once, but must not be
// called from inside a job.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		w.cond.Broadcast()
	}
	w.mu.Unlock()

	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)

	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			w.logger.Debug(LogMsgWorkerStopped, zap.String(LogFieldWorker, w.name))
			return
		}
		job := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.execute(job)
	}
}

func (w *Worker) execute(job func()) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(LogMsgWorkerJobPanicked,
				zap.String(LogFieldWorker, w.name),
				zap.Any(LogFieldPanic, r))
		}
	}()
	job()
}
