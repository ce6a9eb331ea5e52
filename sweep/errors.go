// SPDX-License-Identifier: MIT
package sweep

import "errors"

// ErrKeyNotFound indicates Find, Erase, or UpdateHelper was called with a
// key that is not currently in the status structure. This is always an
// InvariantViolation: a handler tried to erase or touch an edge it never
// inserted, or inserted under a different key.
var ErrKeyNotFound = errors.New("sweep: key not found in status")

// ErrEmptyStatus indicates Predecessor was called while the status
// structure held no entries at all.
var ErrEmptyStatus = errors.New("sweep: predecessor query on empty status")
