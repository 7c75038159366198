package floatc

import (
	"log/slog"

	"github.com/hupe1980/floatc/resource"
)

const (
	// DefaultBucketCount is the initial number of buckets of a dictionary.
	DefaultBucketCount = 16

	// DefaultLoadFactor is the key_count/bucket_count ratio above which a
	// dictionary doubles its bucket count.
	DefaultLoadFactor = 0.7
)

// Options is the resolved configuration shared by all containers.
//
// Containers copy their Options at construction; derived containers (clones,
// copies, merges, cumulative sums) inherit them.
type Options struct {
	Logger      *Logger
	Metrics     MetricsCollector
	Resources   *resource.Controller
	BucketCount int
	LoadFactor  float64
}

// Option configures container behavior.
type Option func(*Options)

// WithLogger configures structured logging for container events
// (growth, trims, rehashes, refused allocations).
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.Logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &floatc.BasicMetricsCollector{}
//	v, _ := vector.New(8, floatc.WithMetricsCollector(metrics))
//	// ... use v ...
//	fmt.Println(metrics.GetStats().Grows)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *Options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.Metrics = mc
	}
}

// WithResourceController accounts every buffer a container allocates against rc.
//
// A controller with a memory limit turns refused reservations into ErrOutOfMemory.
// Sharing one controller between containers gives a single budget; after all of
// them are closed rc.MemoryUsage() is back to its starting value.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *Options) {
		o.Resources = rc
	}
}

// WithBucketCount sets the initial bucket count of a dictionary.
// Values < 1 are ignored.
func WithBucketCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BucketCount = n
		}
	}
}

// WithLoadFactor sets the load factor threshold that triggers a dictionary resize.
// Values outside (0, 1] are ignored.
func WithLoadFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 && f <= 1 {
			o.LoadFactor = f
		}
	}
}

// ApplyOptions resolves optFns on top of the defaults.
func ApplyOptions(optFns ...Option) Options {
	o := Options{
		Logger:      NoopLogger(),
		Metrics:     NoopMetricsCollector{},
		BucketCount: DefaultBucketCount,
		LoadFactor:  DefaultLoadFactor,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Inherit returns an Option that copies o wholesale.
// It is used to give derived containers the configuration of their source.
func Inherit(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}
