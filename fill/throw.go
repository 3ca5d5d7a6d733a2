package fill

import "github.com/pkg/errors"

// Geometric trouble never raises an error here; degenerate input degrades to
// smaller or empty output. The one thing the package will not accept is a
// nonsensical parameter, and threading an error return through every
// otherwise-infallible function just for that would be noise. Instead we
// panic, and the public API recovers to convert to an error.

type FillError error

// Panic with a FillError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleFillPanicRecover(r interface{}) error {
	if r != nil {
		if fillError, ok := r.(FillError); ok {
			return fillError
		}
		panic(r)
	}
	return nil
}
