// Package resource bounds the memory and worker slots that bit sets consume.
//
// The Controller manages three resource types:
//
//   - Memory: a byte budget for block arrays (non-blocking, fail-fast)
//   - Concurrency: a bounded number of worker slots for batch jobs
//   - Throughput: a token bucket on how fast batch jobs start
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for the hard limit and an atomic
// counter for usage. AcquireMemory never blocks: allocator callbacks are
// synchronous, so an exhausted budget surfaces as an allocation failure:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 20,
//	})
//
//	set := bitkit.NewDynamic(&bitkit.BudgetAllocator{Controller: rc})
//
// # Worker Limits
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Job Rate
//
//	rc := resource.NewController(resource.Config{JobsPerSecond: 100})
//
//	if err := rc.AcquireJobs(ctx, 1); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: memory is unlimited,
// worker slots are always granted and jobs are never throttled.
package resource
