package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans post view events out to a fixed set of workers using
// consistent hashing on the post ID, so views of the same post are always
// counted in order by the same worker.
type Dispatcher struct {
	workers []chan ports.PostViewInput
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.PostViewInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PostViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a view event to the worker owning its post. When the worker's
// buffer is full the event is dropped; view counting is best effort and must
// never block a read request.
func (d *Dispatcher) Enqueue(view ports.PostViewInput) {
	i := d.shardIndex(view.PostID)
	select {
	case d.workers[i] <- view:
		metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().Str("post_id", view.PostID).Int("worker_id", i).Msg("view queue full, event dropped")
	}
}

// shardIndex maps a post ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(postID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(postID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PostViewInput) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.service.Process(ctx, view); err != nil {
				metrics.ViewErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("post_id", view.PostID).
					Int("worker_id", id).
					Msg("view processing failed")
				continue
			}
			metrics.ViewsProcessedTotal.Inc()
		}
	}
}
