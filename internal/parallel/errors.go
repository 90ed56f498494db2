// Package parallel provides small helpers for fan-out computations.
package parallel

import "sync"

// ErrorCollector keeps the first non-nil error reported by a group of
// goroutines. All methods except Reset are safe for concurrent use.
//
// Usage:
//
//	var ec parallel.ErrorCollector
//	var wg sync.WaitGroup
//	wg.Add(2)
//	go func() {
//	    defer wg.Done()
//	    ec.SetError(computeLeft())
//	}()
//	go func() {
//	    defer wg.Done()
//	    ec.SetError(computeRight())
//	}()
//	wg.Wait()
//	if err := ec.Err(); err != nil {
//	    return err
//	}
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err unless an error was already recorded. Nil errors
// are ignored, so callers can report unconditionally.
//
// Parameters:
//   - err: The error to record (nil is a no-op).
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil. Call it after the
// goroutines feeding the collector have finished.
//
// Returns:
//   - error: The first recorded error or nil.
func (c *ErrorCollector) Err() error {
	return c.err
}

// Reset clears the collector for reuse. Not safe while goroutines are
// still reporting into it.
func (c *ErrorCollector) Reset() {
	c.once = sync.Once{}
	c.err = nil
}
