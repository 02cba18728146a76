package logging

import "time"

// TimeWithResult runs fn and logs how long it took at debug level.
//
// Example:
//
//	out := logging.TimeWithResult("execute echo", func() string {
//	    return run(cmd)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	duration := time.Since(start)

	Get().Debug(name,
		"duration", duration.String(),
		"us", duration.Microseconds(),
	)
	return result
}
