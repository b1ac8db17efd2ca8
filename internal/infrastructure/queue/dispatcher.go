package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/api/metrics"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	jobTimeout     = 30 * time.Second
)

// Dispatcher hands image cleanup jobs to a fixed set of workers sharded on
// the home id, so the jobs of one home run in order.
type Dispatcher struct {
	workers []chan ports.ImageCleanupJob
	host    ports.ImageHost
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, host ports.ImageHost, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ImageCleanupJob, numWorkers),
		host:    host,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ImageCleanupJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands job to the worker responsible for its home. It never blocks:
// when that worker's channel is full the job is dropped and counted.
func (d *Dispatcher) Enqueue(job ports.ImageCleanupJob) {
	if len(job.PublicIDs) == 0 {
		return
	}
	idx := d.shardIndex(job.HomeID)
	select {
	case d.workers[idx] <- job:
		metrics.ImageCleanupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ImageCleanupDroppedTotal.Inc()
		d.log.Warn().
			Int64("home_id", job.HomeID).
			Int("images", len(job.PublicIDs)).
			Msg("image cleanup queue full, job dropped")
	}
}

// shardIndex maps a home id deterministically to a worker index.
func (d *Dispatcher) shardIndex(homeID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(homeID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ImageCleanupJob) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ImageCleanupQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.process(ctx, id, job)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, job ports.ImageCleanupJob) {
	jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	start := time.Now()
	err := d.host.DeleteResources(jobCtx, job.PublicIDs)
	result := "ok"
	if err != nil {
		result = "error"
		d.log.Error().Err(err).
			Int64("home_id", job.HomeID).
			Strs("public_ids", job.PublicIDs).
			Int("worker_id", id).
			Msg("image cleanup failed")
	}
	metrics.ImageCleanupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
