package bigint

// DefaultParallelThreshold is the factorial range-product size (number of
// factors) above which the two halves of a split are multiplied in
// parallel. Below it the goroutine overhead outweighs the win.
const DefaultParallelThreshold = 4096

// Options carries the tuning and reporting hooks shared by the long-running
// operations. The zero value is usable: no parallelism threshold override
// and no progress reporting.
type Options struct {
	// ParallelThreshold is the minimum number of factors in a factorial
	// range product before the halves run concurrently. Zero selects
	// DefaultParallelThreshold.
	ParallelThreshold int

	// Observer receives progress samples. Nil disables reporting.
	Observer ProgressObserver

	// OperationIndex tags progress samples when several operations run
	// concurrently (one per backend in verify mode).
	OperationIndex int
}

// DefaultOptions returns Options with the default parallelism threshold and
// no observer.
func DefaultOptions() Options {
	return Options{ParallelThreshold: DefaultParallelThreshold}
}

// parallelThreshold resolves the effective threshold.
func (o Options) parallelThreshold() int {
	if o.ParallelThreshold <= 0 {
		return DefaultParallelThreshold
	}
	return o.ParallelThreshold
}

// report sends a progress sample if an observer is configured.
func (o Options) report(progress float64) {
	if o.Observer != nil {
		o.Observer.Update(o.OperationIndex, progress)
	}
}
