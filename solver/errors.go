// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSystemShape covers every malformed input: empty system,
	// equation count ≠ unknowns, coefficient count ≠ unknowns, non-finite values.
	ErrInvalidSystemShape = errors.New("solver: invalid system")

	// ErrUnsupportedSize is returned by Solve for fewer than 2 or more than 4
	// unknowns. It also matches ErrInvalidSystemShape.
	ErrUnsupportedSize = fmt.Errorf("%w: only systems with 2 to 4 unknowns are supported", ErrInvalidSystemShape)

	// ErrVerification is returned by Verify when a substituted equation misses.
	ErrVerification = errors.New("solver: verification failed")
)
