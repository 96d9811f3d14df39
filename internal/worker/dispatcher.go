package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-service/internal/model"
)

type dispatchHandler interface {
	HandleDispatch(ctx context.Context, req model.Request, strategy retry.Strategy)
}

// Dispatcher runs the pool of goroutines that perform provider deliveries
// in the background. The coordinator enqueues a request after winning the
// queued -> processing transition; exactly one job per request ever lands
// here because only the transition winner enqueues.
type Dispatcher struct {
	handler dispatchHandler
	workers int
	jobs    chan model.Request
}

func NewDispatcher(h dispatchHandler, workerCount int) *Dispatcher {
	return &Dispatcher{
		handler: h,
		workers: workerCount,
		jobs:    make(chan model.Request, workerCount*10),
	}
}

// Enqueue hands a request over to the worker pool. The trigger call path
// returns as soon as the job is buffered; it never waits for delivery.
func (d *Dispatcher) Enqueue(req model.Request) {
	d.jobs <- req
}

// Run starts the workers and blocks until ctx is cancelled and the workers
// have drained. Delivery already in flight finishes its attempt budget;
// jobs still buffered when the context ends are dropped.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy) {
	var wg sync.WaitGroup

	wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("dispatch-worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("dispatch-worker-%d shutting down", id)
					return
				case req, ok := <-d.jobs:
					if !ok {
						zlog.Logger.Printf("dispatch-worker-%d channel closed, shutting down", id)
						return
					}

					d.handler.HandleDispatch(ctx, req, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
