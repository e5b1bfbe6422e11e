package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is a snapshot of the profiler's lifetime totals.
type Stats struct {
	Frames   int // frames presented
	Dropped  int // frames abandoned after an error
	Rebuilds int // programs linked
}

// Profiler tracks frame rate, dropped frames, program rebuilds and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	droppedCount   int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	rebuilds     int
	lastRebuilds int
	totals       Stats

	now func() time.Time
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Drop counts a frame that was abandoned instead of presented.
func (p *Profiler) Drop() {
	p.droppedCount++
	p.totals.Dropped++
}

// SetRebuilds records the renderer's running count of linked programs.
//
// Parameters:
//   - total: the total number of programs linked so far
func (p *Profiler) SetRebuilds(total int) {
	p.rebuilds = total
	p.totals.Rebuilds = total
}

// Count records a presented frame in the lifetime totals without timing it.
// Used in place of Tick while profiling output is disabled.
func (p *Profiler) Count() {
	p.totals.Frames++
}

// Stats returns the lifetime totals.
func (p *Profiler) Stats() Stats {
	return p.totals
}

// Tick should be called once per presented frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, dropped frames and rebuilds in the interval, heap usage,
// allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	p.totals.Frames++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. TotalAlloc: cumulative, tracks churn. Sys: bytes obtained from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Dropped: %d | Rebuilds: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, p.droppedCount, p.rebuilds-p.lastRebuilds, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.droppedCount = 0
	p.lastRebuilds = p.rebuilds
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
