package telegram

import (
	"context"
	"sync"
)

// dispatcher reparte trabajos en colas FIFO por usuario: un worker por usuario
// activo, que termina cuando su cola se vacía.
type dispatcher struct {
	mu     sync.Mutex
	queues map[string][]func(context.Context)
	wg     sync.WaitGroup
}

func newDispatcher() *dispatcher {
	return &dispatcher{queues: make(map[string][]func(context.Context))}
}

func (d *dispatcher) Submit(ctx context.Context, key string, job func(context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, running := d.queues[key]
	d.queues[key] = append(q, job)
	if running {
		return
	}
	d.wg.Add(1)
	go d.drain(ctx, key)
}

func (d *dispatcher) drain(ctx context.Context, key string) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		q := d.queues[key]
		if len(q) == 0 {
			delete(d.queues, key)
			d.mu.Unlock()
			return
		}
		job := q[0]
		d.queues[key] = q[1:]
		d.mu.Unlock()

		job(ctx)
	}
}

// Wait bloquea hasta que todas las colas se vacían.
func (d *dispatcher) Wait() {
	d.wg.Wait()
}

func (d *dispatcher) active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queues)
}
