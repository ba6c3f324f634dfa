package printagent

import (
	"context"
	"log"
	"sync"
	"time"
)

// Dispatcher queues print jobs for delivery after the owning database
// transaction has committed. A slow or offline agent can therefore never
// stall or fail an order mutation.
type Dispatcher struct {
	client *Client
	jobs   chan Job
	wg     sync.WaitGroup
	once   sync.Once
}

// NewDispatcher starts a dispatcher with a single delivery worker.
// queueSize of zero falls back to 64.
func NewDispatcher(client *Client, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		client: client,
		jobs:   make(chan Job, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		d.client.Send(ctx, job)
		cancel()
	}
}

// Enqueue submits a job for asynchronous delivery. Call only after commit.
// If the queue is full the job is dropped; printing is best-effort.
func (d *Dispatcher) Enqueue(job Job) {
	select {
	case d.jobs <- job:
	default:
		log.Printf("printagent: queue full, dropping %s job", job.Type)
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
