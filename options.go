package bitkit

type options struct {
	storage          []Block
	capacity         int
	count            int
	countSet         bool
	textCapacity     int
	textCapacitySet  bool
	allocator        Allocator
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures BitSet construction.
type Option func(*options)

// WithStorage supplies caller-owned backing storage holding capacity bits.
// storage must hold at least BlockCount(capacity) blocks. The set takes
// exclusive ownership of storage; bits beyond the initial count are zeroed.
func WithStorage(storage []Block, capacity int) Option {
	return func(o *options) {
		o.storage = storage
		o.capacity = capacity
	}
}

// WithCount sets the number of active bits. It defaults to the capacity
// supplied with WithStorage.
func WithCount(count int) Option {
	return func(o *options) {
		o.count = count
		o.countSet = true
	}
}

// WithAllocator permits the set to grow, shrink and free its storage.
//
// A set without an allocator has a fixed capacity; resizing it returns
// ErrNoAllocator.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithCapacity sets the total capacity of a set built by FromText or
// FromRoaring. It defaults to the number of bits consumed.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.textCapacity = capacity
		o.textCapacitySet = true
	}
}

// WithLogger configures logging of storage events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures collection of storage metrics.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
