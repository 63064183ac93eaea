package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/weekend-raytracer/pkg/noise"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row    int          // Scanline to render
	Seed   uint32       // Seed for this scanline's random generator
	Buffer *PixelBuffer // Shared buffer to write to
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Row    int
	Worker int
	Error  error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for every scanline so submitting never blocks
	rows := raytracer.Camera().Height()

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. Workers stop early once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Row: task.Row, Worker: w.ID, Error: err}
			continue
		}

		// Rows never overlap, so writing to the shared buffer is safe
		w.raytracer.renderRow(task.Row, task.Buffer, noise.NewGenerator(task.Seed))
		w.resultQueue <- RowResult{Row: task.Row, Worker: w.ID}
	}
}

// RowSeed derives the generator seed for scanline j from the render seed
func RowSeed(seed uint32, j int) uint32 {
	return noise.Get2DNoiseUint(int32(j), 0, seed)
}

// RenderParallel renders the image with a pool of workers, one scanline per task.
// Each scanline draws from its own generator, so the output for a given seed does not
// depend on the number of workers. Cancelling ctx stops the render with ErrInterrupted.
func (rt *Raytracer) RenderParallel(ctx context.Context, seed uint32, workers int) (*PixelBuffer, RenderStats, error) {
	startTime := time.Now()
	height := rt.camera.Height()
	buffer := NewPixelBuffer(rt.camera.Width(), height)

	pool := NewWorkerPool(rt, workers)
	pool.Start(ctx)

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j, Seed: RowSeed(seed, j), Buffer: buffer})
	}

	var renderErr error
	completed := 0
	for completed < height {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		completed++
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %v", ErrInterrupted, result.Error)
			}
			continue
		}
		rt.logger.Debugf("scanlines remaining: %d", height-completed)
	}
	pool.Stop()

	stats := newRenderStats(rt.camera, rt.config, pool.GetNumWorkers())
	stats.RenderTime = time.Since(startTime)
	if renderErr != nil {
		return nil, stats, renderErr
	}

	rt.logger.Infof("rendered %dx%d at %d spp on %d workers in %v",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.Workers, stats.RenderTime)
	return buffer, stats, nil
}
