package parscan

import (
	"errors"
	"fmt"
)

// BlockError attributes a contained worker failure to the block whose
// scan produced it. Search functions join one BlockError per failed
// block via errors.Join.
type BlockError struct {
	Block Block
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("parscan: block %s failed: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// AllBlockErrors collects every [*BlockError] from err's chain, including
// errors wrapped via errors.Join. Returns nil if none are found.
func AllBlockErrors(err error) []*BlockError {
	if err == nil {
		return nil
	}

	var out []*BlockError
	collectBlockErrors(err, &out)
	return out
}

func collectBlockErrors(err error, out *[]*BlockError) {
	switch e := err.(type) {
	case *BlockError:
		*out = append(*out, e)

	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			collectBlockErrors(sub, out)
		}

	case interface{ Unwrap() error }:
		collectBlockErrors(e.Unwrap(), out)
	}
}

// IsBlockError reports whether err (or any error in its chain) is a
// [*BlockError].
func IsBlockError(err error) bool {
	if err == nil {
		return false
	}
	var be *BlockError
	return errors.As(err, &be)
}
