package renderer

import (
	"sync"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
	"github.com/adrianap0607/Diorama/pkg/lights"
)

// frame is the read-only snapshot shared by all workers during one render
type frame struct {
	tracer  *Tracer
	camera  Camera
	objects []geometry.Object
	light   lights.PointLight
	width   int
	height  int
	fov     float32
	depth   int
}

// RowTask represents one image row for the worker pool
type RowTask struct {
	Y      int         // Row index, 0 at the top
	Pixels []core.Vec3 // This row's slice of the frame buffer
}

// WorkerPool manages parallel row rendering for one frame
type WorkerPool struct {
	taskQueue  chan RowTask
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker handles individual row tasks
type Worker struct {
	ID        int
	frame     *frame
	taskQueue chan RowTask
	rows      int
}

// newWorkerPool creates a worker pool with the specified number of workers
func newWorkerPool(f *frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:  make(chan RowTask, f.height), // Buffer for every row
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			frame:     f,
			taskQueue: wp.taskQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Stop closes the queue and waits for every submitted row to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// CompletedRows returns the total rows rendered. Only valid after Stop.
func (wp *WorkerPool) CompletedRows() int {
	total := 0
	for _, w := range wp.workers {
		total += w.rows
	}
	return total
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	f := w.frame
	for task := range w.taskQueue {
		// Each task owns a disjoint row slice, so writes need no locking
		for x := range task.Pixels {
			dir := f.camera.RayDirection(x, task.Y, f.width, f.height, f.fov)
			task.Pixels[x] = f.tracer.CastRay(f.camera.Eye, dir, f.objects, f.light, f.depth)
		}
		w.rows++
	}
}
