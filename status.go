package bitkit

import "errors"

// Result is the flat status code of a mutating operation.
//
// Go callers normally inspect the returned error directly; ResultOf exists
// for callers that bridge to code expecting status codes.
type Result uint8

const (
	ResultOK Result = iota
	ResultArgumentError
	ResultNoAllocator
	ResultAllocationFailure
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultArgumentError:
		return "argument error"
	case ResultNoAllocator:
		return "no allocator"
	case ResultAllocationFailure:
		return "allocation failure"
	default:
		return "unknown"
	}
}

// ResultOf classifies err. Errors not produced by this package map to
// ResultArgumentError.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrNoAllocator):
		return ResultNoAllocator
	case errors.Is(err, ErrAllocationFailure):
		return ResultAllocationFailure
	default:
		return ResultArgumentError
	}
}

// Tribool is a boolean query result that can itself fail.
type Tribool int8

const (
	Error Tribool = iota - 1
	False
	True
)

func (t Tribool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// TriboolOf folds a (bool, error) query result into a Tribool.
func TriboolOf(v bool, err error) Tribool {
	if err != nil {
		return Error
	}
	if v {
		return True
	}
	return False
}
