// SPDX-License-Identifier: MIT
package coloring

import "errors"

// ErrSeedFaceOutOfRange indicates Color was given a seed face index
// outside the subdivision's current face list.
var ErrSeedFaceOutOfRange = errors.New("coloring: seed face index out of range")
