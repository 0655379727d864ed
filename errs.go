package numagg

import "errors"

var (
	// ErrTypeConversion reports a leaf value with no numeric conversion
	// capability.
	ErrTypeConversion = errors.New("cannot convert to number")

	// ErrInvalidArgument reports constructor contents that are neither a
	// flat key sequence nor a mapping.
	ErrInvalidArgument = errors.New("invalid aggregate contents")

	// ErrStructureMismatch reports incoming merge data whose key/shape tree
	// is not a subset of the target's.
	ErrStructureMismatch = errors.New("structure mismatch")
)
