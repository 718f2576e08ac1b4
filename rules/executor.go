package rules

import "sync"

// Executor decides where asynchronous completions run.
type Executor interface {
	Submit(task func()) error
}

// SyncExecutor runs each task inline on the caller's goroutine.
type SyncExecutor struct{}

// Submit runs task immediately
func (SyncExecutor) Submit(task func()) error {
	task()
	return nil
}

// SerialExecutor runs tasks one at a time on a single goroutine, in
// submission order. It plays the role of a UI main queue for callers that
// need results delivered on one consumer. The zero value is ready to use;
// its worker starts on first Submit or Close.
type SerialExecutor struct {
	start  sync.Once
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// NewSerialExecutor starts a serial executor. Call Close to stop it.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{}
	e.init()
	return e
}

func (e *SerialExecutor) init() {
	e.start.Do(func() {
		e.done = make(chan struct{})
		e.cond = sync.NewCond(&e.mu)
		go e.run()
	})
}

// Submit queues task. It never blocks on the task itself.
func (e *SerialExecutor) Submit(task func()) error {
	e.init()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrExecutorClosed
	}
	e.queue = append(e.queue, task)
	e.cond.Signal()
	return nil
}

// Close stops accepting tasks, runs the ones already queued and waits for
// the worker to exit. Safe to call more than once.
func (e *SerialExecutor) Close() {
	e.init()
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		e.cond.Signal()
	}
	e.mu.Unlock()

	<-e.done
}

func (e *SerialExecutor) run() {
	defer close(e.done)

	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		task := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.mu.Unlock()

		task()
	}
}
