package corserrs

import "iter"

// All returns an iterator over the CORS-configuration errors contained in
// err's error tree. The order is unspecified and may change from one
// release to the next. All only supports error values returned by
// [github.com/parkrevil/bunner-cors-rs.New] and
// [github.com/parkrevil/bunner-cors-rs.Cors.Reconfigure]; it should not be
// called on any other error value.
func All(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		every(err, yield)
	}
}

func every(err error, f func(error) bool) bool {
	switch err := err.(type) {
	// Note that there's no need for any "interface { Unwrap() error }" case
	// because nowhere do we "wrap" errors; we only ever "join" them.
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !every(err, f) {
				return false
			}
		}
		return true
	default:
		return f(err)
	}
}
