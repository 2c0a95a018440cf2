package sources

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/model"
)

// Loader loads a Source once and keeps the result for the rest of the session.
// Until the load succeeds the collection is empty; a failed load leaves it
// empty for good.
type Loader struct {
	source  Source
	console consoles.Console

	once sync.Once
	done chan struct{}

	mutex    sync.RWMutex
	loading  bool
	closed   bool
	err      error
	orders   *model.Orders
	rejected []Rejection
}

// State is a consistent view of the loader, taken under a single lock.
type State struct {
	Loading  bool
	Err      error
	Orders   *model.Orders
	Rejected []Rejection
}

func NewLoader(source Source, console consoles.Console) *Loader {
	return &Loader{
		source:  source,
		console: console,
		done:    make(chan struct{}),
		orders:  model.EmptyOrders(),
	}
}

func (l *Loader) Source() Source {
	return l.source
}

// Start loads in the background. Calling it more than once does nothing.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		l.begin()
		go l.run(ctx)
	})
}

// Load loads synchronously, or waits for a load that is already running, and
// returns its error.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.begin()
		l.run(ctx)
	})

	select {
	case <-l.done:
		return l.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the load finished, whatever the outcome.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Close tears the loader down. A load that finishes afterwards is ignored.
func (l *Loader) Close() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.closed = true
}

func (l *Loader) Loading() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.loading
}

func (l *Loader) Err() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.err
}

func (l *Loader) Orders() *model.Orders {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.orders
}

func (l *Loader) State() State {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return State{
		Loading:  l.loading,
		Err:      l.err,
		Orders:   l.orders,
		Rejected: l.rejected,
	}
}

func (l *Loader) begin() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.loading = true
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	result, err := l.load(ctx)

	l.mutex.Lock()
	l.loading = false
	closed := l.closed
	if !closed {
		if err != nil {
			l.err = err
		} else {
			l.orders = model.NewOrders(result.Orders)
			l.rejected = result.Rejected
		}
	}
	l.mutex.Unlock()

	switch {
	case closed:
		return

	case err != nil:
		l.console.Printf("%v\n", err)

	default:
		for _, r := range result.Rejected {
			l.console.Printf("Ignoring %v\n", r)
		}
		l.console.Printf("Loaded %v orders from %v\n", len(result.Orders), l.source.Name())
	}
}

func (l *Loader) load(ctx context.Context) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newFetchError(l.source, errors.Errorf("panic: %v", r))
		}
	}()

	result, err = l.source.Load(ctx)
	if err == nil && result == nil {
		result = &Result{}
	}

	return result, err
}
