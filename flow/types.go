package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors. Precondition violations panic with one of these wrapped,
// so a caller that recovers can still match them with errors.Is.
var (
	// ErrVertexOutOfRange indicates a vertex outside [1, Size()].
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrSameEndpoints indicates Solve was called with source == sink.
	ErrSameEndpoints = errors.New("flow: source and sink are the same vertex")

	// ErrNegativeSize indicates New was called with a negative vertex count.
	ErrNegativeSize = errors.New("flow: negative graph size")
)

// Capacity is the amount of flow an arc can still carry.
type Capacity = uint64

// Unbounded is the bottleneck handed to the first vertex of every search round.
const Unbounded Capacity = math.MaxUint64

// Edge is one arc of the residual graph.
//
// Every AddEdge call stores two of them: the forward arc with the requested
// capacity and a reverse arc with capacity 0. Rev is the position of the
// partner arc inside To's adjacency list, so pushing flow on one arc is
// mirrored on the other in O(1).
type Edge struct {
	// To is the destination vertex.
	To int

	// Cap is the remaining residual capacity.
	Cap Capacity

	// Rev indexes the paired arc in the adjacency list of To.
	Rev int
}

// Option configures a MaxFlow via functional arguments.
type Option func(*Options)

// Options holds the solver's tunables.
//   - Verbose: log every successful augmentation round.
//   - Logger: destination for Verbose output.
//   - Iterative: run the augmenting search on an explicit stack instead of
//     the call stack. Results are identical; use it for very deep graphs.
type Options struct {
	Verbose   bool
	Logger    logrus.FieldLogger
	Iterative bool
}

// DefaultOptions returns silent, recursive-search options that log to the
// logrus standard logger once Verbose is switched on.
func DefaultOptions() Options {
	return Options{
		Verbose:   false,
		Logger:    logrus.StandardLogger(),
		Iterative: false,
	}
}

// WithVerbose enables per-round logging.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithLogger sets the logger used when Verbose is on. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithIterativeSearch selects the explicit-stack augmenting search.
func WithIterativeSearch() Option {
	return func(o *Options) { o.Iterative = true }
}

// outOfRange builds the panic value for a bad vertex.
func outOfRange(v, size int) error {
	return fmt.Errorf("%w: vertex %d not in [1, %d]", ErrVertexOutOfRange, v, size)
}
