// SPDX-License-Identifier: MIT

package differ

import "errors"

// ErrNegativeTolerance is returned when a tolerance argument is below zero.
var ErrNegativeTolerance = errors.New("differ: tolerance must be >= 0")
